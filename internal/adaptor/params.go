package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"shareit/internal/dto/request"
	"shareit/pkg/utils"

	"github.com/go-chi/chi/v5"
)

var errMissingIdentity = errors.New("missing " + utils.SharerUserIDHeader + " header")

// callerID returns the identity stored by the Identity middleware.
func callerID(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, errMissingIdentity
	}
	return userID, nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := utils.ParseID(chi.URLParam(r, name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// parsePage reads from/size with the defaults 0 and 10. Range checks are left
// to the validator.
func parsePage(query url.Values) (request.PageRequest, error) {
	from, err := utils.ParseInt(query.Get("from"), 0)
	if err != nil {
		return request.PageRequest{}, errors.New("invalid from parameter")
	}
	size, err := utils.ParseInt(query.Get("size"), request.DefaultPageSize)
	if err != nil {
		return request.PageRequest{}, errors.New("invalid size parameter")
	}
	return request.PageRequest{From: from, Size: size}, nil
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
