package session

import (
	"encoding/json"
	"os"
)

// TokenStore persists the session token between runs. An empty token from
// Load means no session is stored.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a small JSON file under a single fixed
// key. Absence of the file means anonymous.
type FileTokenStore struct {
	// Path is the location of the token file.
	Path string
}

// tokenFile is the on-disk shape of the store.
type tokenFile struct {
	Token string `json:"token"`
}

// Load reads the persisted token. A missing file is not an error and yields
// an empty token.
func (s *FileTokenStore) Load() (string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	defer f.Close()

	var tf tokenFile
	if err := json.NewDecoder(f).Decode(&tf); err != nil {
		return "", err
	}
	return tf.Token, nil
}

// Save writes the token, replacing any previous one.
func (s *FileTokenStore) Save(token string) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tokenFile{Token: token})
}

// Clear removes the token file. Clearing an absent file is a no-op.
func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
