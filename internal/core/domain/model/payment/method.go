package payment

import (
	"homechef/internal/pkg/errs"
)

// Method identifies how the customer pays for an order.
type Method int

const (
	// MethodUnknown is the zero value. It is not a valid payment method.
	MethodUnknown Method = iota

	// MethodCash is cash on delivery, the only method accepted at checkout.
	MethodCash
)

var methodNames = map[Method]string{
	MethodCash: "cash",
}

// Validate checks that the method is one of the supported payment methods.
func (m Method) Validate() error {
	if _, ok := methodNames[m]; !ok {
		return errs.NewValueIsInvalidError("method")
	}
	return nil
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "unknown"
}

// MethodFromString maps a stored wire name back to a Method.
func MethodFromString(name string) (Method, error) {
	for method, methodName := range methodNames {
		if methodName == name {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidError("method")
}
