package hyperion

import "net/http"

// Kind is the declared value type of an endpoint parameter.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Location says where a parameter is serialized.
type Location int

const (
	InQuery Location = iota
	InBody
)

// Param declares one endpoint parameter.
type Param struct {
	Name     string
	Kind     Kind
	Required bool
	In       Location
}

// Endpoint describes one REST path + method pair of the remote API.
type Endpoint struct {
	// Name is the stable identifier used by Call and config files (e.g. get_account).
	Name  string
	Group string

	Method string
	Path   string

	// Params are serialized in this order.
	Params []Param

	// SuccessCode is the only status treated as success.
	SuccessCode int

	// AcceptJSON adds "Accept: application/json" to the request.
	AcceptJSON bool

	// NoContent marks fire-and-forget endpoints whose success body is ignored.
	NoContent bool

	Summary string
}

// Param returns the declared parameter with the given name.
func (e *Endpoint) Param(name string) (Param, bool) {
	for _, p := range e.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

func (e *Endpoint) successCode() int {
	if e.SuccessCode == 0 {
		return http.StatusOK
	}
	return e.SuccessCode
}

func (e *Endpoint) hasBody() bool {
	for _, p := range e.Params {
		if p.In == InBody {
			return true
		}
	}
	return false
}

func query(name string, kind Kind) Param    { return Param{Name: name, Kind: kind} }
func reqQuery(name string, kind Kind) Param { return Param{Name: name, Kind: kind, Required: true} }
func body(name string, kind Kind) Param     { return Param{Name: name, Kind: kind, In: InBody} }
func reqBody(name string, kind Kind) Param {
	return Param{Name: name, Kind: kind, Required: true, In: InBody}
}
