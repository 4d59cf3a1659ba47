package user

import (
	"errors"
	"testing"
)

func TestNormalizeDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain", input: "Martha", want: "Martha"},
		{name: "trims whitespace", input: "  Martha  ", want: "Martha"},
		{name: "empty", input: "", wantErr: ErrEmptyDisplayName},
		{name: "whitespace only", input: "   ", wantErr: ErrEmptyDisplayName},
		{name: "unicode kept", input: "José", want: "José"},
		{name: "decomposed normalized", input: "José", want: "José"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeDisplayName(tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalize display name: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeDisplayNameLength(t *testing.T) {
	long := make([]rune, 65)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := NormalizeDisplayName(string(long)); !errors.Is(err, ErrInvalidDisplayName) {
		t.Fatalf("expected error %v, got %v", ErrInvalidDisplayName, err)
	}
	if _, err := NormalizeDisplayName(string(long[:64])); err != nil {
		t.Fatalf("expected 64 characters to be accepted, got %v", err)
	}
}

func TestWithoutCredential(t *testing.T) {
	owner := User{
		ID:   "user-1",
		Name: "Martha",
		Credentials: []Credential{
			testCredential("credential-x"),
			testCredential("credential-y"),
		},
	}

	updated := owner.WithoutCredential(testCredential("credential-x").Key())
	if len(updated.Credentials) != 1 {
		t.Fatalf("expected one credential, got %d", len(updated.Credentials))
	}
	if updated.Credentials[0].Key() != testCredential("credential-y").Key() {
		t.Fatalf("expected credential-y to remain, got %q", updated.Credentials[0].Key())
	}
	if len(owner.Credentials) != 2 {
		t.Fatal("expected original user to stay unchanged")
	}
}

func TestWithoutCredentialUnknownIDIsNoOp(t *testing.T) {
	owner := User{
		ID:          "user-1",
		Credentials: []Credential{testCredential("credential-x")},
	}

	updated := owner.WithoutCredential("missing")
	if len(updated.Credentials) != 1 {
		t.Fatalf("expected credential set unchanged, got %d credentials", len(updated.Credentials))
	}
}

func TestWithRenamedCredential(t *testing.T) {
	owner := User{
		ID: "user-1",
		Credentials: []Credential{
			testCredential("credential-x"),
			testCredential("credential-y"),
		},
	}

	updated := owner.WithRenamedCredential(testCredential("credential-y").Key(), "Work laptop")
	if updated.Credentials[1].DisplayName != "Work laptop" {
		t.Fatalf("expected renamed credential, got %q", updated.Credentials[1].DisplayName)
	}
	if updated.Credentials[0].DisplayName != "" {
		t.Fatal("expected other credential untouched")
	}
	if owner.Credentials[1].DisplayName != "" {
		t.Fatal("expected original user to stay unchanged")
	}

	same := owner.WithRenamedCredential("missing", "whatever")
	for _, credential := range same.Credentials {
		if credential.DisplayName != "" {
			t.Fatal("expected unknown id rename to be a no-op")
		}
	}
}

func TestCloneIsolatesMutations(t *testing.T) {
	avatar := &Avatar{SkinColor: "Light", TopType: "ShortHairShortFlat"}
	owner := User{
		ID:          "user-1",
		Name:        "Martha",
		Avatar:      avatar,
		Credentials: []Credential{testCredential("credential-x")},
	}

	copied := owner.Clone()
	copied.Avatar.SkinColor = "Tanned"
	copied.Credentials[0].DisplayName = "changed"
	copied.Credentials[0].ID[0] = 'z'

	if owner.Avatar.SkinColor != "Light" {
		t.Fatal("expected avatar copy to be independent")
	}
	if owner.Credentials[0].DisplayName != "" {
		t.Fatal("expected credential copy to be independent")
	}
	if owner.Credentials[0].ID[0] == 'z' {
		t.Fatal("expected credential id bytes to be copied")
	}
}

func TestCredentialLookup(t *testing.T) {
	owner := User{Credentials: []Credential{testCredential("credential-x")}}

	if _, ok := owner.Credential(testCredential("credential-x").Key()); !ok {
		t.Fatal("expected credential to be found")
	}
	if _, ok := owner.Credential("missing"); ok {
		t.Fatal("expected missing credential lookup to fail")
	}
}
