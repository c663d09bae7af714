package domain

// Client represents a lending client. A client owns its credits: deleting a
// client deletes every credit (and transitively every repayment) it owns.
type Client struct {
	ID      int64     `db:"id"`
	Name    string    `db:"name"`
	Email   string    `db:"email"`
	Credits []*Credit `db:"-"`
}
