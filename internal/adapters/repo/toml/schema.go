package toml

import "github.com/Calvin-Zhu01/agent-guard/internal/domain"

const currentSchemaVersion = 1

type identitySchema struct {
	Version int        `toml:"version"`
	User    userSchema `toml:"user"`
}

type userSchema struct {
	ID        string `toml:"id"`
	Username  string `toml:"username"`
	Email     string `toml:"email"`
	Role      string `toml:"role"`
	Status    int    `toml:"status"`
	CreatedAt string `toml:"created_at"`
}

type ledgerSchema struct {
	Version int           `toml:"version"`
	Entries []entrySchema `toml:"entries"`
}

type entrySchema struct {
	Path      string `toml:"path"`
	Title     string `toml:"title"`
	Name      string `toml:"name,omitempty"`
	Closeable bool   `toml:"closeable"`
	FullPath  string `toml:"full_path,omitempty"`
}

func (s *identitySchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s *ledgerSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func toUserSchema(user domain.User) userSchema {
	return userSchema{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		Status:    int(user.Status),
		CreatedAt: user.CreatedAt,
	}
}

func fromUserSchema(user userSchema) domain.User {
	return domain.User{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      domain.UserRole(user.Role),
		Status:    domain.UserStatus(user.Status),
		CreatedAt: user.CreatedAt,
	}
}

func toEntrySchema(entry domain.ViewEntry) entrySchema {
	return entrySchema{
		Path:      entry.Path,
		Title:     entry.Title,
		Name:      entry.Name,
		Closeable: entry.Closeable,
		FullPath:  entry.FullPath,
	}
}

func fromEntrySchema(entry entrySchema) domain.ViewEntry {
	return domain.ViewEntry{
		Path:      entry.Path,
		Title:     entry.Title,
		Name:      entry.Name,
		Closeable: entry.Closeable,
		FullPath:  entry.FullPath,
	}
}
