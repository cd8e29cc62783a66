package grid

import "github.com/google/uuid"

// ID is a stable identity token for cells and scroll regions
type ID string

// idNamespace scopes the deterministic ids produced by IDFor
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("tilegrid"))

// NewID returns a fresh random identity token
func NewID() ID {
	return ID(uuid.NewString())
}

// IDFor returns the identity token for a name. The same name always yields
// the same token.
func IDFor(name string) ID {
	return ID(uuid.NewSHA1(idNamespace, []byte(name)).String())
}

// String returns the token text
func (id ID) String() string {
	return string(id)
}

// Cell is anything that can be placed in the grid.
// View and ID are called once per visible cell on every composition, so both
// must be cheap and free of side effects.
type Cell interface {
	// View renders the interior of the cell
	View() string

	// ID returns the stable identity of the cell
	ID() ID
}
