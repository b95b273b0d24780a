package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"droscher.com/MyWhiskies/pkg/auth"
	"droscher.com/MyWhiskies/pkg/images"
	"droscher.com/MyWhiskies/pkg/listing"
	"droscher.com/MyWhiskies/pkg/model"
	"droscher.com/MyWhiskies/pkg/policy"
	"droscher.com/MyWhiskies/pkg/repository"
	"droscher.com/MyWhiskies/pkg/validation"
)

const bottlerKind = "bottler"

type bottlerBottles interface {
	GetBottlesForBottler(ctx context.Context, bottlerID uint) ([]*model.Bottle, error)
}

type BottlerServer struct {
	*Web
	users     userLookup
	bottlers  repository.BottlerRepository
	bottles   bottlerBottles
	images    *images.Manager
	validator *validation.Validator
	picker    listing.Picker
}

func NewBottlerServer(web *Web, users userLookup, bottlers repository.BottlerRepository, bottles bottlerBottles,
	imageManager *images.Manager, validator *validation.Validator, picker listing.Picker,
) *BottlerServer {
	return &BottlerServer{
		Web: web, users: users, bottlers: bottlers, bottles: bottles, images: imageManager,
		validator: validator, picker: picker,
	}
}

func (b *BottlerServer) ListBottlers(w http.ResponseWriter, r *http.Request) {
	owner, err := collectionOwner(r, b.users)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	bottlers, err := b.bottlers.GetBottlersForUser(r.Context(), owner.ID)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	data := producerListData[*model.Bottler]{
		Owner:   owner,
		IsOwn:   policy.IsOwnList(auth.Viewer(r.Context()), owner),
		Page:    listing.Paginate(bottlers, b.listLength(w, r, bottlerListCookie), pageNumber(r)),
		Lengths: listLengths,
		Kind:    bottlerKind,
	}

	b.render(w, r, http.StatusOK, "producers.html", Page{Title: owner.Username + "'s bottlers", Data: data})
}

func (b *BottlerServer) ShowBottler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	bottler, err := b.bottlers.GetBottlerByID(r.Context(), id)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	owner, err := activeOwner(r.Context(), b.users, bottler.UserID)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	bottles, err := b.bottles.GetBottlesForBottler(r.Context(), bottler.ID)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	if err := r.ParseForm(); err != nil {
		b.fail(w, r, ErrBadRequest)

		return
	}

	viewer := auth.Viewer(r.Context())
	result := listing.Assemble(viewer, bottles, listing.ParseFilter(r.Form), b.picker)

	data := producerData[*model.Bottler]{
		Producer: bottler,
		Owner:    owner,
		IsOwn:    policy.CanModify(viewer, bottler),
		Kind:     bottlerKind,
		List: BottleList{
			Result: result,
			Action: fmt.Sprintf("/bottler/%d", bottler.ID),
			Thumbs: thumbnails(b.images, result.Bottles),
		},
	}

	b.render(w, r, http.StatusOK, "producer.html", Page{Title: bottler.Name, Data: data})
}

func (b *BottlerServer) AddBottlerPage(w http.ResponseWriter, r *http.Request) {
	b.renderProducerForm(w, r, http.StatusOK, "Add bottler",
		producerFormData{Action: "/bottler/add", Kind: bottlerKind}, nil)
}

func (b *BottlerServer) AddBottler(w http.ResponseWriter, r *http.Request) {
	viewer := auth.Viewer(r.Context())

	form, errs, err := b.readForm(r)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	if errs != nil {
		b.renderProducerForm(w, r, http.StatusUnprocessableEntity, "Add bottler",
			producerFormData{Form: form, Action: "/bottler/add", Kind: bottlerKind}, errs)

		return
	}

	created, err := b.bottlers.AddBottler(r.Context(), form.bottler(viewer.ID))
	if err != nil {
		b.fail(w, r, err)

		return
	}

	b.redirect(w, r, fmt.Sprintf("/bottler/%d", created.ID), fmt.Sprintf("Added %s.", created.Name))
}

func (b *BottlerServer) readForm(r *http.Request) (producerForm, validation.FieldErrors, error) {
	if err := r.ParseForm(); err != nil {
		return producerForm{}, nil, ErrBadRequest
	}

	form, reader := readProducerForm(r.PostForm)

	return form, merge(reader.errs, b.validator.Validate(form)), nil
}

func (b *BottlerServer) loadOwned(r *http.Request) (*model.Bottler, error) {
	id, err := idParam(r)
	if err != nil {
		return nil, policy.ErrIssue
	}

	bottler, err := b.bottlers.GetBottlerByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, policy.ErrIssue
	}

	if err != nil {
		return nil, err
	}

	if err := policy.AuthorizeModify(auth.Viewer(r.Context()), bottler); err != nil {
		return nil, err
	}

	return bottler, nil
}

func (b *BottlerServer) EditBottlerPage(w http.ResponseWriter, r *http.Request) {
	bottler, err := b.loadOwned(r)
	if err != nil {
		b.refuseOrFail(w, r, err)

		return
	}

	data := producerFormData{
		Form:   producerFormFromBottler(bottler),
		Action: fmt.Sprintf("/bottler/edit/%d", bottler.ID),
		Kind:   bottlerKind,
	}

	b.renderProducerForm(w, r, http.StatusOK, "Edit "+bottler.Name, data, nil)
}

func (b *BottlerServer) EditBottler(w http.ResponseWriter, r *http.Request) {
	bottler, err := b.loadOwned(r)
	if err != nil {
		b.refuseOrFail(w, r, err)

		return
	}

	form, errs, err := b.readForm(r)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	if errs != nil {
		data := producerFormData{Form: form, Action: fmt.Sprintf("/bottler/edit/%d", bottler.ID), Kind: bottlerKind}
		b.renderProducerForm(w, r, http.StatusUnprocessableEntity, "Edit "+bottler.Name, data, errs)

		return
	}

	form.applyBottler(bottler)

	if err := b.bottlers.UpdateBottler(r.Context(), bottler); err != nil {
		b.fail(w, r, err)

		return
	}

	b.redirect(w, r, fmt.Sprintf("/bottler/%d", bottler.ID), fmt.Sprintf("Updated %s.", bottler.Name))
}

// DeleteBottler refuses while any bottle was bottled by the bottler.
func (b *BottlerServer) DeleteBottler(w http.ResponseWriter, r *http.Request) {
	bottler, err := b.loadOwned(r)
	if err != nil {
		b.refuseOrFail(w, r, err)

		return
	}

	references, err := b.bottlers.CountBottlerBottles(r.Context(), bottler.ID)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	viewer := auth.Viewer(r.Context())
	if err := policy.AuthorizeDelete(viewer, bottler, references); err != nil {
		b.refuseOrFail(w, r, err)

		return
	}

	if err := b.bottlers.DeleteBottler(r.Context(), bottler.ID); err != nil {
		b.fail(w, r, err)

		return
	}

	b.redirect(w, r, "/"+viewer.Username+"/bottlers", fmt.Sprintf("Deleted %s.", bottler.Name))
}
