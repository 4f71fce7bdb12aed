// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/fernet/fernet-go"
)

// fernetKeyService is the private implementation of [KeyService].
type fernetKeyService struct{}

// NewFernetKeyService constructs a [KeyService] backed by fernet-go.
func NewFernetKeyService() KeyService {
	return &fernetKeyService{}
}

// GenerateKey implements [KeyService]. The key comes out in the padded
// URL-safe encoding Galaxy stores in its vault configuration.
func (k *fernetKeyService) GenerateKey() (string, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return key.Encode(), nil
}

// ValidKey implements [KeyService].
func (k *fernetKeyService) ValidKey(key string) bool {
	_, err := fernet.DecodeKey(key)
	return err == nil
}
