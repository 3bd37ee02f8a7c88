package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
)

var idCounter atomic.Int64

// NewID returns a time-based identifier. The nanosecond clock plus a process-
// local counter keeps ids unique within the single-writer scope.
func NewID() string {
	n := idCounter.Add(1)
	return strconv.FormatInt(time.Now().UnixNano()+n, 10)
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Susan", "Richard", "Jessica",
	"Joseph", "Sarah", "Thomas", "Karen", "Daniel", "Lisa",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

func GenerateRandomFullName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

var candidateCompanies = []string{
	"TechCorp", "InnovateLabs", "DesignHub", "DataFlow Inc", "AI Solutions", "CloudTech",
}

// GenerateRandomUser builds a random candidate or recruiter account for the
// seed command. Recruiters get a company attached.
func GenerateRandomUser(password string) (*domain.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := GenerateRandomFullName()
	role := domain.RoleCandidate
	company := ""
	if rand.Intn(3) == 0 {
		role = domain.RoleRecruiter
		company = candidateCompanies[rand.Intn(len(candidateCompanies))]
	}

	user := &domain.User{
		Email:        fmt.Sprintf("%s%d@email.com", firstNames[rand.Intn(len(firstNames))], rand.Intn(10000)),
		Name:         name,
		Role:         role,
		Company:      company,
		PasswordHash: string(passwordHash),
	}

	return user, nil
}

var coverLetterOpenings = []string{
	"I am excited to apply for this position.",
	"I believe my background is a strong match for this role.",
	"Please consider my application for this opening.",
	"I have followed your company for a while and would love to contribute.",
}

func GenerateRandomCoverLetter(jobTitle string) string {
	return fmt.Sprintf("%s My experience aligns well with the %s role and I would welcome the chance to discuss it.",
		coverLetterOpenings[rand.Intn(len(coverLetterOpenings))], jobTitle)
}
