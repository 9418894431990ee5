package analysis

// Classifier maps raw idea text to a ProjectAnalysis. Implementations may
// assume the idea is non-blank; callers own that precondition.
type Classifier interface {
	Classify(idea string) ProjectAnalysis
}

// ClassifierFunc adapts a function into a Classifier.
type ClassifierFunc func(idea string) ProjectAnalysis

// Classify calls the underlying function.
func (fn ClassifierFunc) Classify(idea string) ProjectAnalysis {
	return fn(idea)
}
