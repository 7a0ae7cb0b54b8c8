package analyses

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

const sampleResume = `Ana Pérez
Contacto: ana@example.com | Teléfono 555-0101

Experiencia laboral
2019 - 2024 Desarrolladora en Acme. Aumenté la conversión un 25% usando javascript, react y sql.

Educación
Ingeniería en Sistemas, 2018

Habilidades
Comunicación, trabajo en equipo, liderazgo, git, docker`

// stepClock returns a clock that advances one second per call.
func stepClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(time.Second)
		return now
	}
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newTestService(t *testing.T) (*Service, *MemoryRepo) {
	t.Helper()
	repo := NewMemoryRepo()
	svc := NewService(repo, "es")
	svc.Now = stepClock(time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	svc.NewID = sequentialIDs("analysis")
	return svc, repo
}

type failingRepo struct{}

var errRepoDown = errors.New("repo down")

func (failingRepo) Upsert(context.Context, Analysis) (Analysis, error) {
	return Analysis{}, errRepoDown
}

func (failingRepo) GetByUserJob(context.Context, string, string) (Analysis, error) {
	return Analysis{}, errRepoDown
}

func (failingRepo) ListByUser(context.Context, string, int, int) ([]Analysis, error) {
	return nil, errRepoDown
}
