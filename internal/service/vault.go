package service

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/galaxy-admin/internal/crypto"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
)

const encryptionKeysField = "encryption_keys"

// VaultOptions controls [VaultService].
type VaultOptions struct {
	// MaxKeys limits the number of keys kept after rotation; the oldest
	// keys are dropped. Zero keeps all keys.
	MaxKeys int
}

type vaultService struct {
	opts   VaultOptions
	keys   crypto.KeyService
	logger *logger.Logger
}

// NewVaultService constructs a [VaultService] generating Fernet keys.
func NewVaultService(opts VaultOptions, log *logger.Logger) VaultService {
	return &vaultService{opts: opts, keys: crypto.NewFernetKeyService(), logger: log}
}

// Rotate implements [VaultService]. All other content of the file is
// written back in its original order.
func (s *vaultService) Rotate(path string) (before, after int, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, 0, fmt.Errorf("vault config: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read vault config: %w", err)
	}

	var doc yaml.Node
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return 0, 0, fmt.Errorf("parse vault config: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return 0, 0, fmt.Errorf("%w: not a mapping", ErrMissingEncryptionKey)
	}

	keys := findValue(doc.Content[0], encryptionKeysField)
	if keys == nil {
		return 0, 0, ErrMissingEncryptionKey
	}
	switch {
	case keys.Kind == yaml.ScalarNode && keys.Tag == "!!null":
		*keys = yaml.Node{Kind: yaml.SequenceNode}
	case keys.Kind != yaml.SequenceNode:
		return 0, 0, fmt.Errorf("%w: %s is not a list", ErrMissingEncryptionKey, encryptionKeysField)
	}
	before = len(keys.Content)
	s.logger.Info().Msgf("loaded %d keys", before)
	for i, k := range keys.Content {
		if !s.keys.ValidKey(k.Value) {
			s.logger.Warn().Msgf("key %d is no valid Fernet key, Galaxy cannot decrypt with it", i+1)
		}
	}

	key, err := s.keys.GenerateKey()
	if err != nil {
		return before, 0, err
	}
	keys.Content = append([]*yaml.Node{{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}}, keys.Content...)
	if s.opts.MaxKeys > 0 && len(keys.Content) > s.opts.MaxKeys {
		keys.Content = keys.Content[:s.opts.MaxKeys]
	}
	after = len(keys.Content)
	s.logger.Info().Msgf("writing %d keys", after)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err = enc.Encode(&doc); err != nil {
		return before, after, fmt.Errorf("encode vault config: %w", err)
	}
	if err = enc.Close(); err != nil {
		return before, after, fmt.Errorf("encode vault config: %w", err)
	}
	if err = os.WriteFile(path, buf.Bytes(), info.Mode().Perm()); err != nil {
		return before, after, fmt.Errorf("write vault config: %w", err)
	}
	return before, after, nil
}

// findValue returns the value node of key in mapping m, or nil.
func findValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}
