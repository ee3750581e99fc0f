package domain

import "context"

// Organization представляет организацию, владеющую проектами.
type Organization struct {
	ID   int64
	Slug string
	Name string
}

// Project представляет проект внутри организации.
type Project struct {
	ID             int64
	OrganizationID int64
	Slug           string
	Name           string
}

// User представляет учётную запись пользователя.
type User struct {
	ID       int64
	Username string
	Name     string
	Email    string
}

// OrganizationRepository определяет контракт для чтения организаций и их проектов.
type OrganizationRepository interface {
	GetBySlug(ctx context.Context, slug string) (*Organization, error)
	ListProjects(ctx context.Context, organizationID int64) ([]*Project, error)
}

// FeatureRepository хранит переопределения feature-флагов.
// Второе возвращаемое значение false, если переопределения нет.
type FeatureRepository interface {
	GetOverride(ctx context.Context, organizationID, actorID int64, feature string) (bool, bool, error)
}

// FeatureFlags отвечает на вопрос, включён ли флаг для организации и пользователя.
// actor может быть nil.
type FeatureFlags interface {
	Has(ctx context.Context, feature string, org *Organization, actor *User) (bool, error)
}
