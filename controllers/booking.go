package controllers

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"glowbook-backend/models"
	"glowbook-backend/services"
	"glowbook-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetWizard returns the in-progress booking selection.
func GetWizard(c *gin.Context) {
	c.JSON(http.StatusOK, wizard.Selection())
}

// SetWizardSalon overwrites the selected salon. A JSON null body clears
// the slot.
func SetWizardSalon(c *gin.Context) {
	var salon *models.Salon
	if err := c.ShouldBindJSON(&salon); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	wizard.SetSelectedSalon(salon)
	c.JSON(http.StatusOK, wizard.Selection())
}

type SetServiceInput struct {
	ServiceID *string `json:"serviceId"`
}

// SetWizardService picks a service from the selected salon, keeping the
// service-belongs-to-salon invariant by construction. Null clears the slot.
func SetWizardService(c *gin.Context) {
	var input SetServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.ServiceID == nil {
		wizard.SetSelectedService(nil)
		c.JSON(http.StatusOK, wizard.Selection())
		return
	}

	salon := wizard.Selection().Salon
	if salon == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":    "No salon selected",
			"redirect": "/salons",
		})
		return
	}

	for _, service := range salon.Services {
		if service.ID == *input.ServiceID {
			picked := service
			wizard.SetSelectedService(&picked)
			c.JSON(http.StatusOK, wizard.Selection())
			return
		}
	}

	utils.RespondWithError(c, http.StatusBadRequest, "Service does not belong to the selected salon")
}

type SetDateInput struct {
	Date *time.Time `json:"date"`
}

func SetWizardDate(c *gin.Context) {
	var input SetDateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	wizard.SetSelectedDate(input.Date)
	c.JSON(http.StatusOK, wizard.Selection())
}

type SetSlotInput struct {
	Slot *string `json:"slot"`
}

func SetWizardSlot(c *gin.Context) {
	var input SetSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	wizard.SetSelectedSlot(input.Slot)
	c.JSON(http.StatusOK, wizard.Selection())
}

// ResetWizard clears every slot, called when the user finishes or abandons
// a booking.
func ResetWizard(c *gin.Context) {
	wizard.ResetBooking()
	c.JSON(http.StatusOK, gin.H{"message": "Booking reset"})
}

// GetTimeSlots lists the bookable slot labels by part of day.
func GetTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, models.TimeSlots)
}

// Checkout quotes the price breakdown for the completed wizard.
func Checkout(c *gin.Context) {
	if !wizard.Complete() {
		c.JSON(http.StatusConflict, gin.H{
			"error":    "Booking selection incomplete",
			"redirect": "/salons",
		})
		return
	}

	sel := wizard.Selection()
	subtotal, tax, total := payment.Quote(sel.Service.Price)

	c.JSON(http.StatusOK, gin.H{
		"salon":    sel.Salon.Name,
		"service":  sel.Service.Name,
		"date":     sel.Date,
		"slot":     *sel.Slot,
		"subtotal": subtotal,
		"tax":      tax,
		"total":    total,
	})
}

// Pay runs the simulated payment and finalizes the booking: a reference is
// generated, the QR payload assembled, and the booking prepended to the
// session user's history. The wizard is left intact until the user is done
// with the confirmation screen.
func Pay(c *gin.Context) {
	if !wizard.Complete() {
		c.JSON(http.StatusConflict, gin.H{
			"error":    "Booking selection incomplete",
			"redirect": "/salons",
		})
		return
	}

	var card services.CardDetails
	if err := c.ShouldBindJSON(&card); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sel := wizard.Selection()
	_, _, total := payment.Quote(sel.Service.Price)

	transactionID, err := payment.Process(c.Request.Context(), total, card)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Payment failed")
		return
	}

	booking := buildBooking(sel)
	identity.AddBooking(booking)

	c.JSON(http.StatusOK, gin.H{
		"transactionId": transactionID,
		"total":         total,
		"booking":       booking,
	})
}

// GetBookings returns the session user's booking history, newest first.
func GetBookings(c *gin.Context) {
	user := identity.CurrentUser()
	if user == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "No active session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": user.RecentBookings})
}

// GetBookingQR renders the booking's QR payload as a downloadable PNG.
func GetBookingQR(c *gin.Context) {
	user := identity.CurrentUser()
	if user == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "No active session")
		return
	}

	id := c.Param("id")
	for _, booking := range user.RecentBookings {
		if booking.ID == id {
			png, err := utils.GenerateQRCode(booking.QRValue)
			if err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render QR code")
				return
			}
			c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=Booking-%s.png", booking.ID))
			c.Data(http.StatusOK, "image/png", png)
			return
		}
	}

	utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
}

func buildBooking(sel services.Selection) models.Booking {
	ref := fmt.Sprintf("BK-%d", rand.Intn(100000))
	date := sel.Date.Format(time.RFC3339)

	qrPayload, _ := json.Marshal(gin.H{
		"ref":     ref,
		"salon":   sel.Salon.Name,
		"service": sel.Service.Name,
		"date":    date,
		"time":    *sel.Slot,
	})

	return models.Booking{
		ID:           ref,
		SalonName:    sel.Salon.Name,
		SalonAddress: sel.Salon.Address,
		ServiceName:  sel.Service.Name,
		Date:         date,
		Time:         *sel.Slot,
		QRValue:      string(qrPayload),
		Timestamp:    time.Now().UnixMilli(),
	}
}
