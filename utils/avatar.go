package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var avatarStyles = []string{"avataaars", "personas", "micah", "miniavs", "bottts"}

// GenerateRandomAvatar returns a DiceBear avatar URL with a random
// style and seed, used for contacts created without a photo.
func GenerateRandomAvatar() string {
	seed, _ := rand.Int(rand.Reader, big.NewInt(1000000))
	styleIndex, _ := rand.Int(rand.Reader, big.NewInt(int64(len(avatarStyles))))
	style := avatarStyles[styleIndex.Int64()]

	return fmt.Sprintf("https://api.dicebear.com/7.x/%s/svg?seed=%d", style, seed.Int64())
}
