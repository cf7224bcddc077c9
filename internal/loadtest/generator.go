package loadtest

import (
	"math/rand/v2"
	"time"

	"github.com/MKhiriev/go-posts/models"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length bounds of generated fields, inclusive.
const (
	minAuthorLen  = 5
	maxAuthorLen  = 20
	minContentLen = 200
	maxContentLen = 2000
)

// Generator produces random post inputs. It is not safe for concurrent use.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

// NewGenerator returns a generator whose output is fully determined by
// seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: time.Now,
	}
}

// PostInput returns a post by a random author with random content, dated
// now.
func (g *Generator) PostInput() models.PostInput {
	return models.PostInput{
		Author:  g.alnum(minAuthorLen, maxAuthorLen),
		Content: g.alnum(minContentLen, maxContentLen),
		Date:    g.now().UTC(),
	}
}

// PostInputs returns n independent inputs.
func (g *Generator) PostInputs(n int) []models.PostInput {
	inputs := make([]models.PostInput, n)
	for i := range inputs {
		inputs[i] = g.PostInput()
	}
	return inputs
}

func (g *Generator) alnum(minLen, maxLen int) string {
	b := make([]byte, minLen+g.rnd.IntN(maxLen-minLen+1))
	for i := range b {
		b[i] = alphanumeric[g.rnd.IntN(len(alphanumeric))]
	}
	return string(b)
}
