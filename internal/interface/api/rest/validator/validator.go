package validator

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	domain "blindstore-api/internal/domain/file"
	"blindstore-api/internal/interface/api/rest/dto/auth"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50

	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	defaultPageSize = 20
	maxPageSize     = 100
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateSignup(r auth.SignupRequest) map[string]string {
	errs := make(map[string]string)

	username := strings.TrimSpace(r.Username)

	if username == "" {
		errs["username"] = "username is required"
	} else if l := utf8.RuneCountInString(username); l < minUsernameLen || l > maxUsernameLen {
		errs["username"] = "username length must be 3-50 characters"
	} else if !isUsername(username) {
		errs["username"] = "allowed characters: letters, digits, '_', '-', '.'"
	}

	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(r.Password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func isUsername(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' {
			continue
		}
		return false
	}
	return true
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = "username is required"
	}
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidateListQuery normalizes the listing query parameters. Unknown sort
// fields and directions are rejected rather than silently defaulted so a
// client typo does not return a plausible but wrongly ordered page.
func ValidateListQuery(substring, sortStr, directionStr, pageStr, pageSizeStr string) (domain.ListQuery, error) {
	q := domain.ListQuery{
		Substring: substring,
		Sort:      domain.SortName,
		Direction: domain.Asc,
		Page:      1,
		PageSize:  defaultPageSize,
	}

	switch sortStr {
	case "", string(domain.SortName):
	case string(domain.SortSize):
		q.Sort = domain.SortSize
	case string(domain.SortDate):
		q.Sort = domain.SortDate
	default:
		return q, errors.New("sort must be one of: name, size, date")
	}

	switch directionStr {
	case "", string(domain.Asc):
	case string(domain.Desc):
		q.Direction = domain.Desc
	default:
		return q, errors.New("direction must be asc or desc")
	}

	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 {
			return q, errors.New("page must be a positive integer")
		}
		q.Page = p
	}

	if pageSizeStr != "" {
		ps, err := strconv.Atoi(pageSizeStr)
		if err != nil || ps < 1 {
			return q, errors.New("page_size must be a positive integer")
		}
		if ps > maxPageSize {
			ps = maxPageSize
		}
		q.PageSize = ps
	}

	return q, nil
}
