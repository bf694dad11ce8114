package handler

// Client-facing error messages. Upstream error detail is logged, never
// returned; the login message is identical for unknown email and wrong
// password so the two cases cannot be told apart.
const (
	errInternalServer     = "Internal server error"
	errEmailTaken         = "Email already registered"
	errInvalidCredentials = "Invalid email or password"
	errProductNotFound    = "Product not found"
	errFetchProducts      = "Unable to fetch products"
	errUpdateProduct      = "Unable to update product"
	errDeleteProduct      = "Unable to delete product"
)
