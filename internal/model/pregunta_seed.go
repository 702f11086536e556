package model

// DefaultPreguntas 固定问卷的 27 道题，视觉/听觉/动觉各 9 道。
// 迁移时为空则写入，运行期拉取发现为空也会补种。
func DefaultPreguntas() []Pregunta {
	contenidos := []struct {
		texto  string
		estilo string
	}{
		{"Prefieres aprender observando gráficos o imágenes.", EstiloVisual},
		{"Encuentras más fácil comprender algo cuando lo ves representado en un diagrama.", EstiloVisual},
		{"Disfrutas del uso de colores y esquemas visuales en las explicaciones.", EstiloVisual},
		{"Es más fácil para ti recordar información cuando la ves escrita.", EstiloVisual},
		{"Prefieres estudiar usando mapas conceptuales o diagramas de flujo.", EstiloVisual},
		{"Encuentras útil destacar información importante con colores.", EstiloVisual},
		{"Disfrutas los tutoriales en video que muestran visualmente cómo hacer algo.", EstiloVisual},
		{"Comprendes mejor cuando te presentan información en una presentación con imágenes y gráficos.", EstiloVisual},
		{"Prefieres usar infografías para aprender nuevos conceptos.", EstiloVisual},
		{"Te gusta escuchar explicaciones o historias para entender algo.", EstiloAuditivo},
		{"Prefieres aprender en clases donde el profesor explica mucho con palabras.", EstiloAuditivo},
		{"Encuentras útil grabar las clases para revisarlas después.", EstiloAuditivo},
		{"Comprendes mejor cuando escuchas un podcast sobre un tema.", EstiloAuditivo},
		{"Aprendes más rápido al repetir en voz alta lo que estudias.", EstiloAuditivo},
		{"Prefieres participar en discusiones grupales para aprender nuevos conceptos.", EstiloAuditivo},
		{"Las canciones o rimas te ayudan a memorizar información.", EstiloAuditivo},
		{"Encuentras que escuchar audiolibros es una forma efectiva de aprender.", EstiloAuditivo},
		{"Es más fácil para ti entender un tema si alguien lo explica en voz alta.", EstiloAuditivo},
		{"Aprendes mejor cuando participas activamente en la actividad.", EstiloKinestesico},
		{"Prefieres practicar físicamente lo que estás aprendiendo.", EstiloKinestesico},
		{"Encuentras útil usar modelos o herramientas para entender conceptos complejos.", EstiloKinestesico},
		{"Disfrutas los experimentos o actividades prácticas en clase.", EstiloKinestesico},
		{"Es más fácil para ti aprender algo cuando lo haces con tus manos.", EstiloKinestesico},
		{"Prefieres clases donde puedes moverte y participar en dinámicas.", EstiloKinestesico},
		{"Retienes información mejor si escribes tus propias notas a mano.", EstiloKinestesico},
		{"Disfrutas actividades como crear proyectos o construir algo para aprender.", EstiloKinestesico},
		{"Prefieres aprender mediante juegos interactivos o actividades dinámicas.", EstiloKinestesico},
	}

	preguntas := make([]Pregunta, 0, len(contenidos))
	for i, c := range contenidos {
		preguntas = append(preguntas, Pregunta{
			PreguntaID:      i + 1,
			Contenido:       c.texto,
			Estilo:          c.estilo,
			Categoria:       "General",
			RespuestaPatron: 2,
			Opciones:        []string{"Sí", "No", "A veces"},
		})
	}
	return preguntas
}
