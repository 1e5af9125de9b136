package get_quote

func validateRequest(req *Request) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return ErrMissingDates
	}
	return nil
}
