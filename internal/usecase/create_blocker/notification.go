package create_blocker

import (
	"fmt"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	"github.com/m04kA/SMC-CarWashBot/internal/integrations/mailer"
)

const (
	deletedSubject  = "CarWash reservation deleted"
	emailDateFormat = "January 2, 3:04 PM"
)

const deletedBody = `Hi %s,
we just wanted to let you know, that your reservation for %s for your car (%s) was deleted because one of the following reasons:
    - we won't work on that day (holidays, etc.)
    - the CarWash will be closed because of some technical issues
If you have any questions, please contact us at %s!
Sorry for the inconvenience!`

// deletedReservationEmail письмо владельцу бронирования, удалённого блокировкой
func deletedReservationEmail(owner domain.ReservationOwner, contact string) mailer.Email {
	return mailer.Email{
		To:      owner.Email,
		Subject: deletedSubject,
		Body: fmt.Sprintf(deletedBody,
			owner.FirstName,
			owner.Reservation.StartDate.Format(emailDateFormat),
			owner.Reservation.VehiclePlateNumber,
			contact),
	}
}
