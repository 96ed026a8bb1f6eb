package common

// ListResponse wraps a collection payload together with its item count
type ListResponse struct {
	Data  interface{} `json:"data"`
	Count int         `json:"count"`
}
