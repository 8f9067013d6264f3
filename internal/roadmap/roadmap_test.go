package roadmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathwise/internal/catalog"
)

func TestBuildDefaultRoadmap(t *testing.T) {
	views := Build(catalog.Default().Roadmap)
	require.Len(t, views, 4)

	for i, v := range views {
		assert.Equal(t, i, v.Index)
		assert.Equal(t, time.Duration(i)*100*time.Millisecond, v.Delay)
		assert.Len(t, v.Items, 3)
		assert.Equal(t, i == 0, v.Done)
	}
	assert.Equal(t, "Phase 1 · Weeks 1–6", views[0].Label)
	assert.Equal(t, "Job Readiness & Placement", views[3].Title)
	assert.Equal(t, "Launch", views[3].Items[2].Badge)
}

func TestBuildDoesNotAliasCatalog(t *testing.T) {
	views := Build(catalog.Default().Roadmap)
	views[0].Items[0].Name = "changed"
	assert.Equal(t, "Python for Data Science (Intermediate)", catalog.Default().Roadmap[0].Items[0].Name)
}

func TestBuildEmpty(t *testing.T) {
	assert.Empty(t, Build(nil))
}

func TestVisible(t *testing.T) {
	views := Build(catalog.Default().Roadmap)

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 1},
		{99 * time.Millisecond, 1},
		{100 * time.Millisecond, 2},
		{250 * time.Millisecond, 3},
		{time.Second, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Visible(views, tt.elapsed), "elapsed %s", tt.elapsed)
	}
}

func TestHeading(t *testing.T) {
	assert.Equal(t, "Your Learning Roadmap", Heading(""))
	assert.Equal(t, "Roadmap → ML Engineer", Heading("ML Engineer"))
}
