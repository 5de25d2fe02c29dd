package market

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateListingMsg{}, migration.NoModification)
	migration.MustRegister(1, &PublishListingMsg{}, migration.NoModification)
	migration.MustRegister(1, &PurchaseMsg{}, migration.NoModification)
	migration.MustRegister(1, &ConfirmTradeMsg{}, migration.NoModification)
	migration.MustRegister(1, &ExpireTradeMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

const maxListingIDSize = 64

func validateListingID(id []byte) error {
	switch n := len(id); {
	case n == 0:
		return errors.Wrap(errors.ErrEmpty, "listing id is required")
	case n > maxListingIDSize:
		return errors.Wrapf(errors.ErrInput, "longer than %d bytes", maxListingIDSize)
	}
	return nil
}

var _ weave.Msg = (*CreateListingMsg)(nil)

// Path returns the routing path for this message.
func (CreateListingMsg) Path() string {
	return "market/create_listing"
}

func (msg *CreateListingMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "ListingID", validateListingID(msg.ListingID))
	if msg.Title == "" {
		errs = errors.AppendField(errs, "Title", errors.Wrap(errors.ErrEmpty, "title is required"))
	} else if len(msg.Title) > maxTitleSize {
		errs = errors.AppendField(errs, "Title", errors.Wrapf(errors.ErrInput, "longer than %d characters", maxTitleSize))
	}
	if len(msg.Tags) > maxTags {
		errs = errors.AppendField(errs, "Tags", errors.Wrapf(errors.ErrInput, "more than %d tags", maxTags))
	}
	for _, t := range msg.Tags {
		if t == "" || len(t) > maxTagSize {
			errs = errors.AppendField(errs, "Tags", errors.Wrapf(errors.ErrInput, "tag %q", t))
		}
	}
	if msg.DataSize <= 0 {
		errs = errors.AppendField(errs, "DataSize", errors.Wrap(errors.ErrInput, "must be positive"))
	}
	return errs
}

var _ weave.Msg = (*PublishListingMsg)(nil)

// Path returns the routing path for this message.
func (PublishListingMsg) Path() string {
	return "market/publish_listing"
}

func (msg *PublishListingMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "ListingID", validateListingID(msg.ListingID))
	if msg.Price == nil {
		errs = errors.AppendField(errs, "Price", errors.Wrap(errors.ErrEmpty, "price is required"))
	} else {
		errs = errors.AppendField(errs, "Price", msg.Price.Validate())
		if !msg.Price.IsPositive() {
			errs = errors.AppendField(errs, "Price", errors.Wrap(errors.ErrAmount, "must be positive"))
		}
	}
	return errs
}

var _ weave.Msg = (*PurchaseMsg)(nil)

// Path returns the routing path for this message.
func (PurchaseMsg) Path() string {
	return "market/purchase"
}

func (msg *PurchaseMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "ListingID", validateListingID(msg.ListingID))
	if len(msg.PubKey) == 0 {
		errs = errors.AppendField(errs, "PubKey", errors.Wrap(errors.ErrEmpty, "public key is required"))
	}
	return errs
}

var _ weave.Msg = (*ConfirmTradeMsg)(nil)

// Path returns the routing path for this message.
func (ConfirmTradeMsg) Path() string {
	return "market/confirm_trade"
}

func (msg *ConfirmTradeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "ListingID", validateListingID(msg.ListingID))
	errs = errors.AppendField(errs, "Buyer", msg.Buyer.Validate())
	if msg.Approve && len(msg.AccessKey) == 0 {
		errs = errors.AppendField(errs, "AccessKey", errors.Wrap(errors.ErrEmpty, "access key is required on approval"))
	}
	return errs
}

var _ weave.Msg = (*ExpireTradeMsg)(nil)

// Path returns the routing path for this message.
func (ExpireTradeMsg) Path() string {
	return "market/expire_trade"
}

func (msg *ExpireTradeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "ListingID", validateListingID(msg.ListingID))
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

// Path returns the routing path for this message.
func (UpdateConfigurationMsg) Path() string {
	return "market/update_configuration"
}

func (msg *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if msg.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.Wrap(errors.ErrEmpty, "patch is required"))
	}
	return errs
}
