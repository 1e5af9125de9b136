package pick_date

func validateRequest(req *Request) error {
	if req.Target != TargetStart && req.Target != TargetEnd {
		return ErrInvalidTarget
	}
	if req.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}
