package domain

import "github.com/google/uuid"

// Text (de)serialization for the named ID types so they render as canonical
// UUID strings in JSON instead of raw byte arrays.

func (id ProjectID) String() string { return uuid.UUID(id).String() }

func (id ProjectID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ProjectID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = ProjectID(u)

	return nil
}

func (id CommitID) String() string { return uuid.UUID(id).String() }

func (id CommitID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *CommitID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = CommitID(u)

	return nil
}

func (id SessionID) String() string { return uuid.UUID(id).String() }

func (id SessionID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *SessionID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = SessionID(u)

	return nil
}

func (id TokenID) String() string { return uuid.UUID(id).String() }

func (id TokenID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *TokenID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = TokenID(u)

	return nil
}
