package structs

// Result is the outcome of a single reconcile operation.
//
// Changed reports whether the remote job was actually mutated. An operation
// whose precondition already matches the desired end state performs no
// mutation and returns Changed false with an explanatory Message.
type Result struct {
	Changed bool   `json:"changed"`
	Message string `json:"message,omitempty"`
}
