package identity

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocator_Next_StartsAtClassBase(t *testing.T) {
	a := NewAllocator()

	assert.Equal(t, "P1000", a.Next(PatientPrefix))
	assert.Equal(t, "C2000", a.Next(ConsultationPrefix))
	assert.Equal(t, "SA3000", a.Next(SymptomAnalysisPrefix))
}

func TestAllocator_Next_IsMonotonicPerPrefix(t *testing.T) {
	a := NewAllocator()

	assert.Equal(t, "P1000", a.Next(PatientPrefix))
	assert.Equal(t, "C2000", a.Next(ConsultationPrefix))
	assert.Equal(t, "P1001", a.Next(PatientPrefix))
	assert.Equal(t, "P1002", a.Next(PatientPrefix))
	assert.Equal(t, 3, a.issuedFor(PatientPrefix))
	assert.Equal(t, 1, a.issuedFor(ConsultationPrefix))
}

func TestAllocator_Next_ConcurrentCallsNeverCollide(t *testing.T) {
	a := NewAllocator()
	const n = 200

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]struct{}, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := a.Next(PatientPrefix)
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n, "every allocated id should be unique")
	assert.Equal(t, n, a.issuedFor(PatientPrefix))
}
