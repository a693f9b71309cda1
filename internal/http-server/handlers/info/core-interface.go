package info

import "CollegeAdmin/entity"

type Core interface {
	About() entity.About
	Contact() entity.Contact
}
