package ports

type RentalMetrics interface {
	RecordBooking(err error)
	RecordCancellation(err error)
	RecordStatusFixes(n int)
}
