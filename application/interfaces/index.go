package interfaces

// ApplicationContext carries request-scoped data from the router layer into
// controllers without tying controller signatures to a specific HTTP
// framework type per DTO.
type ApplicationContext[T interface{}] struct {
	Ctx       interface{}
	Body      *T
	Keys      map[string]any
	ClientIP  string
	UserAgent string
}

func (ac *ApplicationContext[T]) GetContextData(key string) any {
	if ac.Keys == nil {
		return nil
	}
	return ac.Keys[key]
}
