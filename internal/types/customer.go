package types

// CustomerRef is a tagged reference to a customer account. A session is
// anchored either to a known account or to a walk-in ("khách lẻ") with no
// account at all; callers must handle both cases explicitly instead of
// testing a nullable ID.
type CustomerRef struct {
	id    ID
	known bool
}

func KnownCustomer(id ID) CustomerRef {
	return CustomerRef{id: id, known: true}
}

func WalkIn() CustomerRef {
	return CustomerRef{}
}

// Known returns the account ID and whether the reference points at one.
func (r CustomerRef) Known() (ID, bool) {
	return r.id, r.known
}

func (r CustomerRef) IsWalkIn() bool {
	return !r.known
}

func (r CustomerRef) String() string {
	if !r.known {
		return "walk-in"
	}
	return string(r.id)
}
