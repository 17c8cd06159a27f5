package ingest

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aidenliw/msl-mohawk/internal/domain"
)

const (
	studentFieldCount = 4
	keyFieldCount     = 2
)

var (
	errEmptyLine     = errors.New("empty line")
	errMissingFields = errors.New("missing fields")
)

// institutionEmail is deliberately unanchored with unescaped dots: any line
// whose lower-cased address contains "<letters><any><alnum>@mohawkcollege<any>ca"
// has always been accepted, and tightening it would reject rosters that
// import today.
var institutionEmail = regexp.MustCompile(`[a-z]*.[a-z0-9]*@mohawkcollege.ca`)

const institutionEmailTag = "institution_email"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation(institutionEmailTag, func(fl validator.FieldLevel) bool {
		return institutionEmail.MatchString(strings.ToLower(fl.Field().String()))
	})
	if err != nil {
		panic(fmt.Sprintf("ingest: register %s: %v", institutionEmailTag, err))
	}
	return v
}

// studentRules carries the checked fields of a roster line.
type studentRules struct {
	StudentID int    `validate:"gt=0,lt=1000000000"`
	Email     string `validate:"institution_email"`
}

// studentRecord builds an eligible student from the fields
// id;first name;last name;email. Names are not validated: students may go by
// a different name than the one in their address.
func studentRecord(fields []string) Result[domain.EligibleStudent] {
	if len(fields) < studentFieldCount {
		return Reject[domain.EligibleStudent](missingFields(studentFieldCount, len(fields)))
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Reject[domain.EligibleStudent](fmt.Errorf("student id %q is not a number", fields[0]))
	}

	if err := validate.Struct(studentRules{StudentID: id, Email: fields[3]}); err != nil {
		return Reject[domain.EligibleStudent](describeRuleError(err))
	}

	return Accept(domain.EligibleStudent{
		StudentID: id,
		FirstName: fields[1],
		LastName:  fields[2],
		Email:     fields[3],
	})
}

// keyRecord builds a key pair from product;key. Extra fields are ignored.
func keyRecord(fields []string) Result[domain.KeyPair] {
	if len(fields) < keyFieldCount {
		return Reject[domain.KeyPair](missingFields(keyFieldCount, len(fields)))
	}
	return Accept(domain.KeyPair{Product: fields[0], Key: fields[1]})
}

// productRecord builds a product from a whole line. Product names are not
// validated beyond being present.
func productRecord(line string) Result[domain.Product] {
	if line == "" {
		return Reject[domain.Product](errEmptyLine)
	}
	return Accept(domain.NewProduct(line))
}

func missingFields(want, got int) error {
	return fmt.Errorf("%w: want %d, got %d", errMissingFields, want, got)
}

// describeRuleError turns validator output into a single operator-facing reason.
func describeRuleError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.StructField() {
		case "StudentID":
			msgs = append(msgs, fmt.Sprintf("student id %v must be between 1 and %d", fe.Value(), domain.StudentIDLimit-1))
		case "Email":
			msgs = append(msgs, fmt.Sprintf("email %q is not a %s address", fe.Value(), domain.InstitutionDomain))
		default:
			msgs = append(msgs, fe.Error())
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
