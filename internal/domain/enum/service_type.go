package enum

// ServiceType is the kind of work a contact inquiry asks about.
type ServiceType string

const (
	ServiceTypeNewPool         ServiceType = "New pool"
	ServiceTypePoolInstall     ServiceType = "pool install"
	ServiceTypePoolReplacement ServiceType = "pool replacement"
	ServiceTypePoolRemoval     ServiceType = "pool removal"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTypeNewPool, ServiceTypePoolInstall, ServiceTypePoolReplacement, ServiceTypePoolRemoval:
		return true
	}
	return false
}
