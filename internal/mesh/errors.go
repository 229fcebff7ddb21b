package mesh

import "fmt"

// ConstructionError is returned when a mesh is given unusable input. No GPU
// resource has been touched when it is returned.
type ConstructionError struct {
	msg string
}

func (e *ConstructionError) Error() string {
	return "mesh: " + e.msg
}

// ResourceError is returned when the device fails to create or fill a GPU
// resource. Anything acquired before the failure has already been deleted.
type ResourceError struct {
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("mesh: failed to allocate %s: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// ContractError is the panic value raised when a mesh is used outside its
// initialized lifetime.
type ContractError struct {
	Op    string
	State State
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("mesh: %s called on %s mesh", e.Op, e.State)
}
