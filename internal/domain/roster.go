package domain

import "time"

// Worker is an externally managed roster record. The engine only reads these
// for name resolution; profile management lives outside this module.
type Worker struct {
	ID         string
	FirstName  string
	LastName   string
	Position   string
	Department string
	Status     WorkerStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DisplayName returns the worker's full display name.
func (w *Worker) DisplayName() string {
	if w.LastName == "" {
		return w.FirstName
	}
	return w.FirstName + " " + w.LastName
}

// Project is an externally managed roster record referenced by sessions.
type Project struct {
	ID        string
	Name      string
	Status    ProjectStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
