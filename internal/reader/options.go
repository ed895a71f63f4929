package reader

type Option func(*FileReader)

func WithFormat(f Format) Option {
	return func(r *FileReader) {
		r.format = f
	}
}

func Strict(strict bool) Option {
	return func(r *FileReader) {
		r.strict = strict
	}
}
