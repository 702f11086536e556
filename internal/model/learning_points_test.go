package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDominantStyle(t *testing.T) {
	tests := []struct {
		name                          string
		visual, auditivo, kinestesico float64
		want                          string
	}{
		{"visual gana", 5, 1, 2, EstiloVisual},
		{"auditivo gana", 1, 5, 2, EstiloAuditivo},
		{"kinestesico gana", 1, 2, 5, EstiloKinestesico},
		{"empate total favorece visual", 3, 3, 3, EstiloVisual},
		{"empate auditivo-kinestesico favorece auditivo", 1, 4, 4, EstiloAuditivo},
		{"empate visual-kinestesico favorece visual", 4, 1, 4, EstiloVisual},
		{"todo en cero favorece visual", 0, 0, 0, EstiloVisual},
		{"valores negativos", -1, -2, -3, EstiloVisual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DominantStyle(tt.visual, tt.auditivo, tt.kinestesico))
		})
	}
}
