package content

import "errors"

var ErrTestimonialNotFound = errors.New("testimonial not found")
