package entity

// AuthProvider identifies how an account authenticates.
type AuthProvider string

const (
	// ProviderLocal is email plus password.
	ProviderLocal AuthProvider = "local"
	// ProviderGoogle is Google OAuth sign-in.
	ProviderGoogle AuthProvider = "google"
)

// Ensure normalizes unknown values to ProviderLocal.
func (p AuthProvider) Ensure() AuthProvider {
	switch p {
	case ProviderLocal, ProviderGoogle:
		return p
	default:
		return ProviderLocal
	}
}
