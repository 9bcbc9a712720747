package deckschema_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simware/deckschema"
)

// The compiled schema is immutable and shared read-only; concurrent
// assemblies of independent documents must not interfere.
func TestConcurrentAssemble(t *testing.T) {
	schema := geometrySchema(t)

	const goroutines = 16
	const iterations = 50

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			doc := &deckschema.Element{
				Tag:   "Group",
				Attrs: []deckschema.Attr{{Name: "name", Value: fmt.Sprintf("worker-%d", g)}},
				Children: []*deckschema.Element{
					{
						Tag: "Box",
						Attrs: []deckschema.Attr{
							{Name: "xMin", Value: "{0,0,0}"},
							{Name: "xMax", Value: fmt.Sprintf("{%d,%d,%d}", g, g, g)},
						},
					},
				},
			}
			want, wantViolations := schema.Assemble(doc)
			for i := 0; i < iterations; i++ {
				got, violations := schema.Assemble(doc)
				if len(violations) != len(wantViolations) {
					errs <- fmt.Errorf("goroutine %d: violation count changed: %d vs %d", g, len(violations), len(wantViolations))
					return
				}
				if !got.Equal(want) {
					errs <- fmt.Errorf("goroutine %d: record changed between assemblies", g)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	// Mixed valid and invalid documents in parallel.
	var invalidWG sync.WaitGroup
	results := make([]int, goroutines)
	for g := 0; g < goroutines; g++ {
		invalidWG.Add(1)
		go func(g int) {
			defer invalidWG.Done()
			doc := &deckschema.Element{Tag: "Box"}
			_, violations := schema.Assemble(doc)
			results[g] = len(violations.Errors())
		}(g)
	}
	invalidWG.Wait()
	for _, n := range results {
		assert.Equal(t, 2, n) // xMin and xMax both missing
	}
}
