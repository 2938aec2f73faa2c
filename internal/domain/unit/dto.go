package unit

import "github.com/sdm-erp/erp-backend-go/internal/pkg/validator"

type UpsertUnitRequest struct {
	ID       string
	Name     string   `json:"name"`
	Features []string `json:"features"`
}

func (r *UpsertUnitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UnitResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Features []string `json:"features"`
}

func ToResponse(u Unit) UnitResponse {
	return UnitResponse{
		ID:       u.ID,
		Name:     u.Name,
		Features: u.Features,
	}
}
