// Package mail abstracts outbound email delivery behind the Mail interface.
package mail
