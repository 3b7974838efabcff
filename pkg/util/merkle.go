package util

import (
	"crypto/sha256"
	"encoding/hex"
)

type MerkleNode struct {
	Hash  string
	Left  *MerkleNode
	Right *MerkleNode
}

func HashSHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func HashStringSHA256Hex(value string) string {
	return HashSHA256Hex([]byte(value))
}

// BuildMerkleTree pairs leaf hashes level by level. An odd node is paired with itself.
func BuildMerkleTree(leafHashes []string) *MerkleNode {
	if len(leafHashes) == 0 {
		return &MerkleNode{Hash: HashStringSHA256Hex("")}
	}

	level := make([]*MerkleNode, len(leafHashes))
	for i, hash := range leafHashes {
		level[i] = &MerkleNode{Hash: hash}
	}
	for len(level) > 1 {
		parents := make([]*MerkleNode, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left, right := level[i], level[i]
			if i+1 < len(level) {
				right = level[i+1]
			}
			parents = append(parents, &MerkleNode{
				Hash:  hashMerklePair(left.Hash, right.Hash),
				Left:  left,
				Right: right,
			})
		}
		level = parents
	}
	return level[0]
}

// MerkleRoot hashes every item with encode and returns the root hash of the resulting tree.
func MerkleRoot[T any](items []T, encode func(T) string) string {
	leaves := make([]string, len(items))
	for i, item := range items {
		leaves[i] = HashStringSHA256Hex(encode(item))
	}
	return BuildMerkleTree(leaves).Hash
}

func hashMerklePair(leftHash, rightHash string) string {
	leftBytes, errLeft := hex.DecodeString(leftHash)
	rightBytes, errRight := hex.DecodeString(rightHash)
	if errLeft != nil || errRight != nil {
		return HashStringSHA256Hex(leftHash + rightHash)
	}
	return HashSHA256Hex(append(leftBytes, rightBytes...))
}
