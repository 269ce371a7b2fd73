package models

// Address is the payer's billing address. All fields are optional; absent
// values are sent to the gateway as empty strings.
type Address struct {
	Street1 string
	Street2 string
	City    string
	State   string
	Country string
	Zip     string
}

// User is the payer. All fields are optional.
type User struct {
	Email     string
	FirstName string
	LastName  string
	MobileNo  string
	Address   Address
}
