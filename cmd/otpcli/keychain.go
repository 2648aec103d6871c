package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// keychainEntry is one named account in a keychain file.
type keychainEntry struct {
	Secret    string `yaml:"secret"`
	Type      string `yaml:"type"`      // "totp" (default) or "hotp"
	Digits    uint   `yaml:"digits"`    // 0 means the library default
	Period    int    `yaml:"period"`    // seconds, 0 means default
	Algorithm string `yaml:"algorithm"` // SHA1/SHA256/SHA512, "" means default
}

// keychain maps account names to their OTP parameters.
//
// Example file:
//
//	github:
//	  secret: JBSWY3DPEHPK3PXP
//	vpn:
//	  secret: MFRGGZDFMZTWQ2LK
//	  type: hotp
//	  digits: 8
type keychain map[string]keychainEntry

func loadKeychain(path string) (keychain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keychain: %w", err)
	}
	var kc keychain
	if err := yaml.Unmarshal(data, &kc); err != nil {
		return nil, fmt.Errorf("failed to parse keychain: %w", err)
	}
	if len(kc) == 0 {
		return nil, fmt.Errorf("keychain %s has no accounts", path)
	}
	return kc, nil
}

func (kc keychain) lookup(account string) (keychainEntry, error) {
	var entry keychainEntry
	if account == "" {
		if len(kc) != 1 {
			return keychainEntry{}, fmt.Errorf("keychain has %d accounts, pass --account", len(kc))
		}
		for _, e := range kc {
			entry = e
		}
	} else {
		var ok bool
		entry, ok = kc[account]
		if !ok {
			return keychainEntry{}, fmt.Errorf("account %q not found in keychain", account)
		}
	}
	if entry.Secret == "" {
		return keychainEntry{}, fmt.Errorf("account %q has no secret", account)
	}
	return entry, nil
}
