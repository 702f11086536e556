package util

import (
	"crypto/rand"
	"math/big"
)

// TokenAlphabet 加入码的 62 个候选字符，区分大小写
const TokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRandomToken 每个字符独立均匀采样；不做唯一性检查
func GenerateRandomToken(length int) string {
	b := make([]byte, length)
	max := big.NewInt(int64(len(TokenAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand 只在系统熵源不可用时失败
			panic(err)
		}
		b[i] = TokenAlphabet[n.Int64()]
	}
	return string(b)
}
