package inventory

import "errors"

var (
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrDuplicateBarcode  = errors.New("an item with this barcode already exists in the branch")
	ErrOutOfStock        = errors.New("item is out of stock")
	ErrSerialNotInStock  = errors.New("serial number is not in stock")
	ErrSerialAlreadyHeld = errors.New("serial number is already registered")
)
