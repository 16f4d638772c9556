package handler

import (
	"strconv"

	"forum-asisten-backend/internal/model"
	"forum-asisten-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type UserHandler struct {
	repo repository.UserRepository
}

func NewUserHandler(repo repository.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

type CreateUserRequest struct {
	Nama     string `json:"nama" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin asisten"`
	NIM      string `json:"nim"`
	Telepon  string `json:"telepon"`
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal hash password"})
	}

	user := model.User{
		Nama:     req.Nama,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
	}
	if req.NIM != "" {
		user.NIM = &req.NIM
	}
	if req.Telepon != "" {
		user.Telepon = &req.Telepon
	}

	if err := h.repo.Create(&user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat user, email mungkin sudah terdaftar"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User berhasil dibuat", "data": user})
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data user"})
	}
	return c.JSON(fiber.Map{"data": users})
}

// GetAsisten mengembalikan daftar asisten saja, dipakai admin saat
// plotingan dan penetapan tipe honor.
func (h *UserHandler) GetAsisten(c *fiber.Ctx) error {
	users, err := h.repo.GetAsisten()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data asisten"})
	}
	return c.JSON(fiber.Map{"data": users})
}

type UpdateUserRequest struct {
	Nama    string `json:"nama" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	NIM     string `json:"nim"`
	Telepon string `json:"telepon"`
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	user, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}

	user.Nama = req.Nama
	user.Email = req.Email
	if req.NIM != "" {
		user.NIM = &req.NIM
	}
	if req.Telepon != "" {
		user.Telepon = &req.Telepon
	}

	if err := h.repo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate user"})
	}
	return c.JSON(fiber.Map{"message": "User berhasil diupdate", "data": user})
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=aktif non-aktif"`
}

func (h *UserHandler) UpdateStatus(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	user, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}

	user.Status = req.Status
	if err := h.repo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate status"})
	}
	return c.JSON(fiber.Map{"message": "Status user diperbarui", "data": user})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus user"})
	}
	return c.JSON(fiber.Map{"message": "User berhasil dihapus"})
}
