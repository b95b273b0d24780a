// Package policy decides what a viewer may see, edit and delete. A nil
// viewer is an anonymous visitor.
package policy

import (
	"errors"

	"droscher.com/MyWhiskies/pkg/model"
)

var (
	// ErrNotFound hides the existence of entities the viewer may not read.
	ErrNotFound = errors.New("not found")
	// ErrIssue is the single answer to every refused mutation, whatever
	// the reason, so responses cannot be used to probe for entities.
	ErrIssue = errors.New("there was an issue with your request")
	// ErrHasBottles refuses to delete a distillery or bottler still
	// referenced by bottles.
	ErrHasBottles = errors.New("cannot delete, has associated bottles")
)

// Owned is implemented by every entity that belongs to a user.
type Owned interface {
	OwnerID() uint
}

func isOwner(viewer *model.User, ownerID uint) bool {
	return viewer != nil && !viewer.IsDeleted && viewer.ID != 0 && viewer.ID == ownerID
}

// CanView reports whether the bottle is visible: owners see everything,
// everyone else sees public bottles only.
func CanView(viewer *model.User, bottle *model.Bottle) bool {
	return !bottle.IsPrivate || isOwner(viewer, bottle.UserID)
}

func CanModify(viewer *model.User, entity Owned) bool {
	return entity != nil && isOwner(viewer, entity.OwnerID())
}

// IsOwnList reports whether the viewer is looking at their own collection.
func IsOwnList(viewer *model.User, owner *model.User) bool {
	return owner != nil && isOwner(viewer, owner.ID)
}

func VisibleBottles(viewer *model.User, bottles []*model.Bottle) []*model.Bottle {
	visible := make([]*model.Bottle, 0, len(bottles))

	for _, bottle := range bottles {
		if CanView(viewer, bottle) {
			visible = append(visible, bottle)
		}
	}

	return visible
}

// ShowBottle guards the bottle detail page. A nil bottle is a failed lookup.
func ShowBottle(viewer *model.User, bottle *model.Bottle) error {
	if bottle == nil || !CanView(viewer, bottle) {
		return ErrNotFound
	}

	return nil
}

// AuthorizeModify guards edit operations. A nil entity is a failed lookup
// and is refused with the same error as a foreign entity.
func AuthorizeModify(viewer *model.User, entity Owned) error {
	if !CanModify(viewer, entity) {
		return ErrIssue
	}

	return nil
}

// AuthorizeDelete guards delete operations. references is the number of
// bottles still pointing at the entity; bottles themselves pass zero.
func AuthorizeDelete(viewer *model.User, entity Owned, references int64) error {
	if err := AuthorizeModify(viewer, entity); err != nil {
		return err
	}

	if references > 0 {
		return ErrHasBottles
	}

	return nil
}
