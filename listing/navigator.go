package listing

import (
	"errors"
)

// View is either Listing or Detail.
type View interface {
	isView()
}

type Listing struct{}

// Detail is only built by the Navigator, so it always names a repository.
type Detail struct {
	name string
}

func (Listing) isView() {}
func (Detail) isView()  {}

func (d Detail) Name() string { return d.name }

var (
	ErrEmptyName       = errors.New("repository name is required")
	ErrAlreadyInDetail = errors.New("a repository is already selected")
)

// Navigator switches between the listing and one repository's detail.
type Navigator struct {
	view View
}

func NewNavigator() Navigator {
	return Navigator{view: Listing{}}
}

func (n Navigator) Current() View {
	if n.view == nil {
		return Listing{}
	}
	return n.view
}

func (n *Navigator) Select(name string) (Detail, error) {
	if name == "" {
		return Detail{}, ErrEmptyName
	}
	if _, ok := n.Current().(Detail); ok {
		return Detail{}, ErrAlreadyInDetail
	}
	d := Detail{name: name}
	n.view = d
	return d, nil
}

// Back reports whether there was a detail view to leave.
func (n *Navigator) Back() bool {
	if _, ok := n.Current().(Detail); !ok {
		return false
	}
	n.view = Listing{}
	return true
}
