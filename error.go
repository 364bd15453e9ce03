package winutils

type ErrEmptyName struct{}

func (ErrEmptyName) Error() string { return "empty module name" }

type ErrNullHandle struct{}

func (ErrNullHandle) Error() string { return "null module handle" }

type ErrNotLoaded struct{}

func (ErrNotLoaded) Error() string { return "library not loaded" }
