package enum

// PublishStatus controls whether a catalog record is visible on the public
// site.
type PublishStatus string

const (
	PublishStatusDraft     PublishStatus = "draft"
	PublishStatusPublished PublishStatus = "published"
)

func (s PublishStatus) Valid() bool {
	return s == PublishStatusDraft || s == PublishStatusPublished
}

func ParsePublishStatus(s string) PublishStatus {
	status := PublishStatus(s)
	if status.Valid() {
		return status
	}
	return PublishStatusDraft
}

// CustomerStatus marks whether a customer is active.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

func (s CustomerStatus) Valid() bool {
	return s == CustomerStatusActive || s == CustomerStatusInactive
}

func ParseCustomerStatus(s string) CustomerStatus {
	status := CustomerStatus(s)
	if status.Valid() {
		return status
	}
	return CustomerStatusActive
}
