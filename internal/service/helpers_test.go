package service

import "time"

func mustDateForBond() time.Time {
	t, err := time.Parse("2006/01/02", "2019/11/30")
	if err != nil {
		panic(err)
	}
	return t
}
