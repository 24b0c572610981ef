package httpx

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	"github.com/dojoworks/dojo-admin/internal/http/validation"
)

// Form structs hold the submitted strings so a failed submission re-renders
// exactly what was typed. Field names match the API JSON names.

type studentForm struct {
	Name         string `form:"nome" validate:"required,max=120"`
	Email        string `form:"email" validate:"required,email,max=120"`
	Document     string `form:"cpf" validate:"required,cpf"`
	Phone        string `form:"telefone" validate:"omitempty,phone"`
	BirthDate    string `form:"dataNascimento" validate:"required,isodate"`
	Status       string `form:"status" validate:"omitempty,oneof=ATIVO INATIVO"`
	Belt         string `form:"faixa"`
	Degree       string `form:"grau" validate:"omitempty,numeric"`
	GuardianID   string `form:"responsavelId" validate:"omitempty,numeric"`
	Street       string `form:"logradouro" validate:"omitempty,max=160"`
	Number       string `form:"numero" validate:"omitempty,max=20"`
	Complement   string `form:"complemento" validate:"omitempty,max=80"`
	Neighborhood string `form:"bairro" validate:"omitempty,max=80"`
	City         string `form:"cidade" validate:"omitempty,max=80"`
	State        string `form:"estado" validate:"omitempty,len=2"`
	PostalCode   string `form:"cep" validate:"omitempty,max=9"`
}

func readStudentForm(r *http.Request) studentForm {
	return studentForm{
		Name:         formValue(r, "nome"),
		Email:        formValue(r, "email"),
		Document:     formValue(r, "cpf"),
		Phone:        formValue(r, "telefone"),
		BirthDate:    formValue(r, "dataNascimento"),
		Status:       strings.ToUpper(formValue(r, "status")),
		Belt:         strings.ToUpper(formValue(r, "faixa")),
		Degree:       formValue(r, "grau"),
		GuardianID:   formValue(r, "responsavelId"),
		Street:       formValue(r, "logradouro"),
		Number:       formValue(r, "numero"),
		Complement:   formValue(r, "complemento"),
		Neighborhood: formValue(r, "bairro"),
		City:         formValue(r, "cidade"),
		State:        strings.ToUpper(formValue(r, "estado")),
		PostalCode:   formValue(r, "cep"),
	}
}

func studentFormFrom(s *academy.Student) studentForm {
	f := studentForm{
		Name:      s.Name,
		Email:     s.Email,
		Document:  s.Document,
		Phone:     s.Phone,
		BirthDate: s.BirthDate.String(),
		Status:    string(s.Status),
		Belt:      string(s.Belt),
		Degree:    strconv.Itoa(s.Degree),
	}
	if a := s.Address; a != nil {
		f.Street, f.Number, f.Complement = a.Street, a.Number, a.Complement
		f.Neighborhood, f.City, f.State, f.PostalCode = a.Neighborhood, a.City, a.State, a.PostalCode
	}
	return f
}

var postalCodePattern = regexp.MustCompile(`^\d{5}-?\d{3}$`)

func (f studentForm) validate(requiresGuardian func(academy.Date) bool, creating bool) map[string]string {
	v := validation.New().Struct(f).
		Validate("cep", f.PostalCode, validation.Pattern("Postal code", postalCodePattern))
	if addr := f.address(); addr != nil && !addr.Complete() {
		v.Add("logradouro", "Fill in street, city and postal code, or leave the address blank.")
	}
	if f.Belt != "" {
		if _, ok := academy.ParseBelt(f.Belt); !ok {
			v.Add("faixa", "Unknown belt.")
		}
	}
	if n, err := strconv.Atoi(f.Degree); err == nil && (n < 0 || n > 10) {
		v.Add("grau", "Degree must be between 0 and 10.")
	}
	if creating && requiresGuardian != nil && f.GuardianID == "" {
		if birth, err := academy.ParseDate(f.BirthDate); err == nil && requiresGuardian(birth) {
			v.Add("responsavelId", "Students under 18 must be registered with a guardian.")
		}
	}
	return emptyToNil(v.Errors())
}

func (f studentForm) request() academy.StudentRequest {
	birth, _ := academy.ParseDate(f.BirthDate)
	degree, _ := strconv.Atoi(f.Degree)
	req := academy.StudentRequest{
		Name:      f.Name,
		Email:     f.Email,
		Document:  f.Document,
		Phone:     f.Phone,
		BirthDate: birth,
		Status:    academy.StudentStatus(f.Status),
		Belt:      academy.Belt(f.Belt),
		Degree:    degree,
	}
	if id, err := strconv.ParseInt(f.GuardianID, 10, 64); err == nil && id > 0 {
		req.GuardianID = &id
	}
	req.Address = f.address()
	return req
}

// address returns the submitted address, or nil when every address field is blank.
func (f studentForm) address() *academy.Address {
	addr := academy.Address{
		Street:       f.Street,
		Number:       f.Number,
		Complement:   f.Complement,
		Neighborhood: f.Neighborhood,
		City:         f.City,
		State:        f.State,
		PostalCode:   f.PostalCode,
	}
	if addr == (academy.Address{}) {
		return nil
	}
	return &addr
}

type guardianForm struct {
	Name         string `form:"nome" validate:"required,max=120"`
	Email        string `form:"email" validate:"required,email,max=120"`
	Document     string `form:"cpf" validate:"required,cpf"`
	Phone        string `form:"telefone" validate:"omitempty,phone"`
	Relationship string `form:"parentesco"`
}

func readGuardianForm(r *http.Request) (guardianForm, map[string]string) {
	f := guardianForm{
		Name:         formValue(r, "nome"),
		Email:        formValue(r, "email"),
		Document:     formValue(r, "cpf"),
		Phone:        formValue(r, "telefone"),
		Relationship: strings.ToUpper(formValue(r, "parentesco")),
	}
	v := validation.New().Struct(f)
	if f.Relationship != "" {
		v.Validate("parentesco", f.Relationship, validation.OneOf("Relationship", academy.Relationships()))
	}
	return f, emptyToNil(v.Errors())
}

func guardianFormFrom(g *academy.Guardian) guardianForm {
	return guardianForm{Name: g.Name, Email: g.Email, Document: g.Document, Phone: g.Phone, Relationship: g.Relationship}
}

func (f guardianForm) request() academy.GuardianRequest {
	return academy.GuardianRequest{
		Name:         f.Name,
		Email:        f.Email,
		Document:     f.Document,
		Phone:        f.Phone,
		Relationship: f.Relationship,
	}
}

type groupForm struct {
	Name       string `form:"nome" validate:"required,max=120"`
	Modality   string `form:"modalidade" validate:"required"`
	Instructor string `form:"instrutor" validate:"required,max=120"`
	Schedule   string `form:"horario" validate:"omitempty,max=120"`
	Capacity   string `form:"capacidade" validate:"omitempty,numeric"`
	Active     bool   `form:"ativa"`
}

func readGroupForm(r *http.Request) (groupForm, map[string]string) {
	f := groupForm{
		Name:       formValue(r, "nome"),
		Modality:   strings.ToUpper(formValue(r, "modalidade")),
		Instructor: formValue(r, "instrutor"),
		Schedule:   formValue(r, "horario"),
		Capacity:   formValue(r, "capacidade"),
		Active:     formBool(r, "ativa"),
	}
	v := validation.New().Struct(f)
	if f.Modality != "" && !academy.Modality(f.Modality).Valid() {
		v.Add("modalidade", "Unknown modality.")
	}
	if n, err := strconv.Atoi(f.Capacity); err == nil && (n < 0 || n > 500) {
		v.Add("capacidade", "Capacity must be between 0 and 500.")
	}
	return f, emptyToNil(v.Errors())
}

func groupFormFrom(g *academy.Group) groupForm {
	return groupForm{
		Name:       g.Name,
		Modality:   string(g.Modality),
		Instructor: g.Instructor,
		Schedule:   g.Schedule,
		Capacity:   strconv.Itoa(g.Capacity),
		Active:     g.Active,
	}
}

func (f groupForm) request() academy.GroupRequest {
	capacity, _ := strconv.Atoi(f.Capacity)
	return academy.GroupRequest{
		Name:       f.Name,
		Modality:   academy.Modality(f.Modality),
		Instructor: f.Instructor,
		Schedule:   f.Schedule,
		Capacity:   capacity,
		Active:     f.Active,
	}
}

type classForm struct {
	GroupID     string `form:"turmaId" validate:"required,numeric"`
	Date        string `form:"data" validate:"required,isodate"`
	StartTime   string `form:"horaInicio" validate:"required,hhmm"`
	EndTime     string `form:"horaFim" validate:"required,hhmm"`
	Status      string `form:"status"`
	Description string `form:"descricao" validate:"omitempty,max=500"`
}

func readClassForm(r *http.Request) (classForm, map[string]string) {
	f := classForm{
		GroupID:     formValue(r, "turmaId"),
		Date:        formValue(r, "data"),
		StartTime:   formValue(r, "horaInicio"),
		EndTime:     formValue(r, "horaFim"),
		Status:      strings.ToUpper(formValue(r, "status")),
		Description: formValue(r, "descricao"),
	}
	v := validation.New().Struct(f)
	if f.Status != "" {
		if _, ok := academy.ParseClassStatus(f.Status); !ok {
			v.Add("status", "Unknown class status.")
		}
	}
	// HH:MM strings order lexically.
	if f.StartTime != "" && f.EndTime != "" && f.EndTime <= f.StartTime {
		v.Add("horaFim", "End time must be after the start time.")
	}
	return f, emptyToNil(v.Errors())
}

func classFormFrom(c *academy.Class) classForm {
	return classForm{
		GroupID:     strconv.FormatInt(c.GroupID, 10),
		Date:        c.Date.String(),
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		Status:      string(c.Status),
		Description: c.Description,
	}
}

func (f classForm) request() academy.ClassRequest {
	groupID, _ := strconv.ParseInt(f.GroupID, 10, 64)
	date, _ := academy.ParseDate(f.Date)
	return academy.ClassRequest{
		GroupID:     groupID,
		Date:        date,
		StartTime:   f.StartTime,
		EndTime:     f.EndTime,
		Status:      academy.ClassStatus(f.Status),
		Description: f.Description,
	}
}

type enrollmentForm struct {
	StudentID  string `form:"alunoId" validate:"required,numeric"`
	GroupID    string `form:"turmaId" validate:"required,numeric"`
	EnrolledOn string `form:"dataInscricao" validate:"omitempty,isodate"`
}

func readEnrollmentForm(r *http.Request) (enrollmentForm, map[string]string) {
	f := enrollmentForm{
		StudentID:  formValue(r, "alunoId"),
		GroupID:    formValue(r, "turmaId"),
		EnrolledOn: formValue(r, "dataInscricao"),
	}
	return f, validation.Struct(f)
}

func (f enrollmentForm) request() academy.EnrollmentRequest {
	studentID, _ := strconv.ParseInt(f.StudentID, 10, 64)
	groupID, _ := strconv.ParseInt(f.GroupID, 10, 64)
	date, _ := academy.ParseDate(f.EnrolledOn)
	return academy.EnrollmentRequest{StudentID: studentID, GroupID: groupID, EnrolledOn: date}
}

type userForm struct {
	Name     string `form:"nome" validate:"required,max=120"`
	Email    string `form:"email" validate:"required,email,max=120"`
	Profile  string `form:"perfil" validate:"required"`
	Active   bool   `form:"ativo"`
	Password string `form:"senha" validate:"omitempty,min=8,max=72"`
}

func readUserForm(mode FormMode) FormParser[userForm] {
	return func(r *http.Request) (userForm, map[string]string) {
		f := userForm{
			Name:    formValue(r, "nome"),
			Email:   formValue(r, "email"),
			Profile: strings.ToUpper(formValue(r, "perfil")),
			Active:  formBool(r, "ativo"),
			// never trimmed; spaces are legal in passwords
			Password: r.PostFormValue("senha"),
		}
		v := validation.New().Struct(f)
		if f.Profile != "" {
			if _, ok := academy.ParseProfile(f.Profile); !ok {
				v.Add("perfil", "Choose a profile.")
			}
		}
		if mode == FormModeCreate && f.Password == "" {
			v.Add("senha", "Password is required.")
		}
		return f, emptyToNil(v.Errors())
	}
}

func userFormFrom(u *academy.User) userForm {
	return userForm{Name: u.Name, Email: u.Email, Profile: string(u.Profile), Active: u.Active}
}

// request builds the API body; templates never echo Password back.
func (f userForm) request() academy.UserRequest {
	return academy.UserRequest{
		Name:     f.Name,
		Email:    f.Email,
		Profile:  academy.Profile(f.Profile),
		Active:   f.Active,
		Password: f.Password,
	}
}
