package user

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/louisbranch/retroboard/apperrors"
)

var (
	// ErrEmptyDisplayName indicates a missing display name.
	ErrEmptyDisplayName = apperrors.New(apperrors.CodeUserEmptyDisplayName, "display name is required")
	// ErrInvalidDisplayName indicates a display name outside the accepted length.
	ErrInvalidDisplayName = apperrors.New(apperrors.CodeUserInvalidDisplayName, "display name must be 1-64 characters")
)

const maxDisplayNameLength = 64

// User is the identity record returned by the relying party.
//
// The session store owns the canonical copy; everything else works on
// snapshots obtained through Clone.
type User struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Avatar      *Avatar      `json:"avatar,omitempty"`
	Credentials []Credential `json:"credentials,omitempty"`
}

// Avatar holds the avatar component selection rendered by the UI.
type Avatar struct {
	AccessoriesType string `json:"accessoriesType,omitempty"`
	ClotheColor     string `json:"clotheColor,omitempty"`
	ClotheType      string `json:"clotheType,omitempty"`
	EyeType         string `json:"eyeType,omitempty"`
	EyebrowType     string `json:"eyebrowType,omitempty"`
	FacialHairColor string `json:"facialHairColor,omitempty"`
	FacialHairType  string `json:"facialHairType,omitempty"`
	GraphicType     string `json:"graphicType,omitempty"`
	HairColor       string `json:"hairColor,omitempty"`
	MouthType       string `json:"mouthType,omitempty"`
	SkinColor       string `json:"skinColor,omitempty"`
	TopType         string `json:"topType,omitempty"`
}

// NormalizeDisplayName trims and NFC-normalizes a display name before it is
// sent to the relying party.
func NormalizeDisplayName(name string) (string, error) {
	name = norm.NFC.String(strings.TrimSpace(name))
	if name == "" {
		return "", ErrEmptyDisplayName
	}
	if len([]rune(name)) > maxDisplayNameLength {
		return "", ErrInvalidDisplayName
	}
	return name, nil
}

// Clone returns a deep copy of the user.
func (u User) Clone() User {
	copied := u
	if u.Avatar != nil {
		avatar := *u.Avatar
		copied.Avatar = &avatar
	}
	copied.Credentials = CloneCredentials(u.Credentials)
	return copied
}

// Credential returns the credential with the given id, if present.
func (u User) Credential(id string) (Credential, bool) {
	for _, credential := range u.Credentials {
		if credential.Key() == id {
			return credential, true
		}
	}
	return Credential{}, false
}

// WithoutCredential returns a copy of the user with the credential removed.
// Removing an unknown id leaves the set unchanged.
func (u User) WithoutCredential(id string) User {
	copied := u.Clone()
	if len(copied.Credentials) == 0 {
		return copied
	}
	remaining := make([]Credential, 0, len(copied.Credentials))
	for _, credential := range copied.Credentials {
		if credential.Key() == id {
			continue
		}
		remaining = append(remaining, credential)
	}
	copied.Credentials = remaining
	return copied
}

// WithRenamedCredential returns a copy of the user with the credential's
// display name replaced. Renaming an unknown id leaves the set unchanged.
func (u User) WithRenamedCredential(id, name string) User {
	copied := u.Clone()
	for i, credential := range copied.Credentials {
		if credential.Key() == id {
			copied.Credentials[i].DisplayName = name
		}
	}
	return copied
}
