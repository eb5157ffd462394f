package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidCredentials
	ErrInvalidStatus
	ErrProductNotFound
	ErrOrderNotFound
	ErrOrdersUnavailable
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrInvalidCredentials: "invalid admin credentials",
	ErrInvalidStatus:      "invalid order status",
	ErrProductNotFound:    "product not found",
	ErrOrderNotFound:      "order not found",
	ErrOrdersUnavailable:  "all order retrieval attempts failed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusBadRequest,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrInvalidStatus:      http.StatusBadRequest,
	ErrProductNotFound:    http.StatusBadRequest,
	ErrOrderNotFound:      http.StatusNotFound,
	ErrOrdersUnavailable:  http.StatusBadGateway,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrInvalidCredentials: "0005",
	ErrInvalidStatus:      "0006",
	ErrProductNotFound:    "0007",
	ErrOrderNotFound:      "0008",
	ErrOrdersUnavailable:  "0009",
}
