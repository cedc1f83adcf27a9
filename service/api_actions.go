package service

import (
	"net/http"

	"github.com/docbridge-io/docbridge/rest/model"
	"github.com/docbridge-io/docbridge/util"
	"github.com/evergreen-ci/gimlet"
	"github.com/pkg/errors"
)

// actionRequest is the request envelope shared by every action
// endpoint. The operation-specific payloads (document, filter, update,
// pipeline) are schema-less values passed through to the database
// unexamined.
type actionRequest struct {
	Database   string `json:"database"`
	Collection string `json:"collection"`
	Document   any    `json:"document"`
	Documents  []any  `json:"documents"`
	Filter     any    `json:"filter"`
	Update     any    `json:"update"`
	Pipeline   []any  `json:"pipeline"`
	Limit      int64  `json:"limit"`
	Skip       int64  `json:"skip"`
}

func parseActionRequest(r *http.Request) (*actionRequest, error) {
	req := &actionRequest{}
	if err := util.ReadJSONInto(r.Body, req); err != nil {
		return nil, errors.Wrap(err, "parsing request body")
	}
	if req.Database == "" {
		return nil, errors.New("missing required field 'database'")
	}
	if req.Collection == "" {
		return nil, errors.New("missing required field 'collection'")
	}
	return req, nil
}

func (as *APIServer) insertOne(w http.ResponseWriter, r *http.Request) {
	req, err := parseActionRequest(r)
	if err != nil {
		as.LoggedError(w, r, http.StatusInternalServerError, err)
		return
	}
	if req.Document == nil {
		as.LoggedError(w, r, http.StatusInternalServerError, errors.New("missing required field 'document'"))
		return
	}

	res, err := as.sc.InsertOne(r.Context(), req.Database, req.Collection, req.Document)
	if err != nil {
		as.LoggedError(w, r, http.StatusInternalServerError, err)
		return
	}

	out := &model.APIInsertOneResult{}
	out.BuildFromService(res)
	gimlet.WriteJSON(w, out)
}

func (as *APIServer) insertMany(w http.ResponseWriter, r *http.Request) {
	req, err := parseActionRequest(r)
	if err != nil {
		as.LoggedError(w, r, http.StatusInternalServerError, err)
		return
	}
	if req.Documents == nil {
		as.LoggedError(w, r, http.StatusInternalServerError, errors.New("missing required field 'documents'"))
		return
	}

	res, err := as.sc.InsertMany(r.Context(), req.Database, req.Collection, req.Documents)
	if err != nil {
		as.LoggedError(w, r, http.StatusInternalServerError, err)
		return
	}

	out := &model.APIInsertManyResult{}
	out.BuildFromService(res)
	gimlet.WriteJSON(w, out)
}

func (as *APIServer) find(w http.ResponseWriter, r *http.Request) {
	req, err := parseActionRequest(r)
	if err != nil {
		as.LoggedError(w, r, http.StatusInternalServerError, err)
		return
	}

	docs, err := as.sc.Find(r.Context(), req.Database, req.Collection, req.Filter, req.Skip, req.Limit)
	if err != nil {
		as.LoggedError(w, r, http.StatusInternalServerError, err)
		return
	}

	out := &model.APIDocumentsResult{}
	out.BuildFromService(docs)
	gimlet.WriteJSON(w, out)
}

func (as *APIServer) aggregate(w http.ResponseWriter, r *http.Request) {
	req, err := parseActionRequest(r)
	if err != nil {
		as.LoggedError(w, r, http.StatusInternalServerError, err)
		return
	}
	if req.Pipeline == nil {
		as.LoggedError(w, r, http.StatusInternalServerError, errors.New("missing required field 'pipeline'"))
		return
	}

	docs, err := as.sc.Aggregate(r.Context(), req.Database, req.Collection, req.Pipeline)
	if err != nil {
		as.LoggedError(w, r, http.StatusInternalServerError, err)
		return
	}

	out := &model.APIDocumentsResult{}
	out.BuildFromService(docs)
	gimlet.WriteJSON(w, out)
}

func (as *APIServer) updateOne(w http.ResponseWriter, r *http.Request) {
	req, err := parseActionRequest(r)
	if err != nil {
		as.LoggedError(w, r, http.StatusInternalServerError, err)
		return
	}
	if req.Update == nil {
		as.LoggedError(w, r, http.StatusInternalServerError, errors.New("missing required field 'update'"))
		return
	}

	res, err := as.sc.UpdateOne(r.Context(), req.Database, req.Collection, req.Filter, req.Update)
	if err != nil {
		as.LoggedError(w, r, http.StatusInternalServerError, err)
		return
	}

	out := &model.APIUpdateOneResult{}
	out.BuildFromService(res)
	gimlet.WriteJSON(w, out)
}

func (as *APIServer) updateMany(w http.ResponseWriter, r *http.Request) {
	req, err := parseActionRequest(r)
	if err != nil {
		as.LoggedError(w, r, http.StatusInternalServerError, err)
		return
	}
	if req.Update == nil {
		as.LoggedError(w, r, http.StatusInternalServerError, errors.New("missing required field 'update'"))
		return
	}

	res, err := as.sc.UpdateMany(r.Context(), req.Database, req.Collection, req.Filter, req.Update)
	if err != nil {
		as.LoggedError(w, r, http.StatusInternalServerError, err)
		return
	}

	out := &model.APIUpdateManyResult{}
	out.BuildFromService(res)
	gimlet.WriteJSON(w, out)
}

func (as *APIServer) deleteOne(w http.ResponseWriter, r *http.Request) {
	req, err := parseActionRequest(r)
	if err != nil {
		as.LoggedError(w, r, http.StatusInternalServerError, err)
		return
	}

	res, err := as.sc.DeleteOne(r.Context(), req.Database, req.Collection, req.Filter)
	if err != nil {
		as.LoggedError(w, r, http.StatusInternalServerError, err)
		return
	}

	out := &model.APIDeleteResult{}
	out.BuildFromService(res)
	gimlet.WriteJSON(w, out)
}

func (as *APIServer) deleteMany(w http.ResponseWriter, r *http.Request) {
	req, err := parseActionRequest(r)
	if err != nil {
		as.LoggedError(w, r, http.StatusInternalServerError, err)
		return
	}

	res, err := as.sc.DeleteMany(r.Context(), req.Database, req.Collection, req.Filter)
	if err != nil {
		as.LoggedError(w, r, http.StatusInternalServerError, err)
		return
	}

	out := &model.APIDeleteResult{}
	out.BuildFromService(res)
	gimlet.WriteJSON(w, out)
}
