package mock

import "github.com/fwojciec/bookqa"

var _ bookqa.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of bookqa.Classifier.
type Classifier struct {
	ClassifyFn func(question string) (bookqa.Intent, []bookqa.Entity)
}

func (c *Classifier) Classify(question string) (bookqa.Intent, []bookqa.Entity) {
	return c.ClassifyFn(question)
}
