package menus

import "bpa-panel-service/internal/app/models"

func leaf(panel models.PanelKey, id, label, suffix, icon string, permissions ...string) models.MenuEntry {
	return models.MenuEntry{
		ID:                  id,
		Label:               label,
		Href:                panel.BasePath() + suffix,
		Icon:                icon,
		RequiredPermissions: permissions,
	}
}

func group(id, label, icon string, children ...models.MenuEntry) models.MenuEntry {
	return models.MenuEntry{
		ID:       id,
		Label:    label,
		Icon:     icon,
		Children: children,
	}
}

// DefaultMenus returns a fresh copy of the built-in navigation for every
// panel.
func DefaultMenus() map[models.PanelKey][]models.MenuEntry {
	owner := models.PanelOwner
	admin := models.PanelAdmin
	shop := models.PanelShop
	clinic := models.PanelClinic
	mother := models.PanelMother
	producer := models.PanelProducer
	country := models.PanelCountry
	staff := models.PanelStaff
	partner := models.PanelPartner

	return map[models.PanelKey][]models.MenuEntry{
		owner: {
			leaf(owner, "owner-dashboard", "Dashboard", "/dashboard", "home"),
			group("owner-business", "Business", "briefcase",
				leaf(owner, "owner-branches", "Branches", "/branches", "store", "branch.read", "branch.manage"),
				leaf(owner, "owner-staff", "Staff", "/staff", "users", "staff.read", "staff.manage"),
				leaf(owner, "owner-kyc", "Verification", "/kyc", "shield", "kyc.submit"),
			),
			group("owner-sales", "Sales", "receipt",
				leaf(owner, "owner-orders", "Orders", "/orders", "shopping-bag", "order.read"),
				leaf(owner, "owner-invoices", "Invoices", "/invoices", "file-text", "invoice.read"),
				leaf(owner, "owner-payouts", "Payouts", "/payouts", "wallet", "payout.read"),
			),
			group("owner-inventory", "Inventory", "package",
				leaf(owner, "owner-products", "Products", "/products", "tag", "product.read"),
				leaf(owner, "owner-stock", "Stock", "/stock", "layers", "inventory.read"),
			),
			group("owner-account", "Account", "settings",
				leaf(owner, "owner-settings", "Settings", "/settings", "settings"),
				leaf(owner, "owner-profile", "Profile", "/profile", "user"),
			),
		},
		admin: {
			leaf(admin, "admin-dashboard", "Dashboard", "/dashboard", "home"),
			group("admin-users", "Users", "users",
				leaf(admin, "admin-user-list", "All Users", "/users", "user", "user.read"),
				leaf(admin, "admin-roles", "Roles", "/roles", "key", "role.read", "role.manage"),
			),
			group("admin-businesses", "Businesses", "briefcase",
				leaf(admin, "admin-owners", "Owners", "/owners", "store", "owner.read"),
				leaf(admin, "admin-kyc", "KYC Review", "/kyc", "shield", "kyc.review"),
				leaf(admin, "admin-partners", "Partners", "/partners", "handshake", "partner.read"),
			),
			group("admin-finance", "Finance", "wallet",
				leaf(admin, "admin-transactions", "Transactions", "/transactions", "repeat", "transaction.read"),
				leaf(admin, "admin-payouts", "Payouts", "/payouts", "send", "payout.read", "payout.approve"),
			),
			group("admin-catalog", "Catalog", "grid",
				leaf(admin, "admin-categories", "Categories", "/categories", "folder", "catalog.manage"),
				leaf(admin, "admin-countries", "Countries", "/countries", "globe", "country.manage"),
			),
			group("admin-account", "Account", "settings",
				leaf(admin, "admin-settings", "Settings", "/settings", "settings"),
				leaf(admin, "admin-profile", "Profile", "/profile", "user"),
			),
		},
		shop: {
			leaf(shop, "shop-dashboard", "Dashboard", "/dashboard", "home"),
			group("shop-catalog", "Catalog", "grid",
				leaf(shop, "shop-products", "Products", "/products", "tag", "product.read"),
				leaf(shop, "shop-categories", "Categories", "/categories", "folder", "product.manage"),
			),
			group("shop-orders", "Orders", "shopping-bag",
				leaf(shop, "shop-order-list", "All Orders", "/orders", "list", "order.read"),
				leaf(shop, "shop-returns", "Returns", "/returns", "rotate-ccw", "order.manage"),
			),
			group("shop-account", "Account", "settings",
				leaf(shop, "shop-settings", "Settings", "/settings", "settings"),
				leaf(shop, "shop-profile", "Profile", "/profile", "user"),
			),
		},
		clinic: {
			leaf(clinic, "clinic-dashboard", "Dashboard", "/dashboard", "home"),
			group("clinic-appointments", "Appointments", "calendar",
				leaf(clinic, "clinic-appointment-list", "Appointments", "/appointments", "calendar", "appointment.read"),
				leaf(clinic, "clinic-schedule", "Schedule", "/schedule", "clock", "schedule.manage"),
			),
			group("clinic-patients", "Patients", "heart",
				leaf(clinic, "clinic-pets", "Pets", "/pets", "heart", "patient.read"),
				leaf(clinic, "clinic-records", "Medical Records", "/records", "clipboard", "medical_record.read"),
			),
			group("clinic-services", "Services", "activity",
				leaf(clinic, "clinic-service-list", "Services", "/services", "activity", "service.read"),
				leaf(clinic, "clinic-vets", "Veterinarians", "/vets", "user-check", "staff.read"),
			),
			group("clinic-account", "Account", "settings",
				leaf(clinic, "clinic-settings", "Settings", "/settings", "settings"),
				leaf(clinic, "clinic-profile", "Profile", "/profile", "user"),
			),
		},
		mother: {
			leaf(mother, "mother-dashboard", "Home", "/dashboard", "home"),
			group("mother-pets", "My Pets", "heart",
				leaf(mother, "mother-pet-list", "Pets", "/pets", "heart"),
				leaf(mother, "mother-health", "Health Records", "/health", "clipboard"),
			),
			group("mother-activity", "Activity", "activity",
				leaf(mother, "mother-orders", "Orders", "/orders", "shopping-bag"),
				leaf(mother, "mother-appointments", "Appointments", "/appointments", "calendar"),
			),
			group("mother-account", "Account", "settings",
				leaf(mother, "mother-addresses", "Addresses", "/addresses", "map-pin"),
				leaf(mother, "mother-profile", "Profile", "/profile", "user"),
			),
		},
		producer: {
			leaf(producer, "producer-dashboard", "Dashboard", "/dashboard", "home"),
			group("producer-catalog", "Catalog", "package",
				leaf(producer, "producer-products", "Products", "/products", "tag", "product.read"),
				leaf(producer, "producer-batches", "Batches", "/batches", "layers", "inventory.read"),
			),
			group("producer-distribution", "Distribution", "truck",
				leaf(producer, "producer-distributors", "Distributors", "/distributors", "truck", "distributor.read"),
				leaf(producer, "producer-orders", "Orders", "/orders", "shopping-bag", "order.read"),
			),
			group("producer-account", "Account", "settings",
				leaf(producer, "producer-settings", "Settings", "/settings", "settings"),
				leaf(producer, "producer-profile", "Profile", "/profile", "user"),
			),
		},
		country: {
			leaf(country, "country-dashboard", "Dashboard", "/dashboard", "home"),
			group("country-businesses", "Businesses", "briefcase",
				leaf(country, "country-owners", "Owners", "/owners", "store", "owner.read"),
				leaf(country, "country-kyc", "KYC Review", "/kyc", "shield", "kyc.review"),
			),
			group("country-reports", "Reports", "bar-chart",
				leaf(country, "country-sales-report", "Sales", "/reports/sales", "trending-up", "report.read"),
				leaf(country, "country-payout-report", "Payouts", "/reports/payouts", "wallet", "report.read", "payout.read"),
			),
			group("country-account", "Account", "settings",
				leaf(country, "country-settings", "Settings", "/settings", "settings"),
				leaf(country, "country-profile", "Profile", "/profile", "user"),
			),
		},
		staff: {
			leaf(staff, "staff-dashboard", "Dashboard", "/dashboard", "home"),
			group("staff-work", "Work", "check-square",
				leaf(staff, "staff-tasks", "Tasks", "/tasks", "check-square", "task.read"),
				leaf(staff, "staff-appointments", "Appointments", "/appointments", "calendar", "appointment.read"),
				leaf(staff, "staff-orders", "Orders", "/orders", "shopping-bag", "order.read"),
			),
			group("staff-account", "Account", "settings",
				leaf(staff, "staff-profile", "Profile", "/profile", "user"),
			),
		},
		partner: {
			leaf(partner, "partner-dashboard", "Dashboard", "/dashboard", "home"),
			group("partner-network", "Network", "share-2",
				leaf(partner, "partner-referrals", "Referrals", "/referrals", "share-2", "referral.read"),
				leaf(partner, "partner-businesses", "Businesses", "/businesses", "store", "owner.read"),
			),
			group("partner-earnings", "Earnings", "wallet",
				leaf(partner, "partner-commissions", "Commissions", "/commissions", "percent", "commission.read"),
				leaf(partner, "partner-payouts", "Payouts", "/payouts", "send", "payout.read"),
			),
			group("partner-account", "Account", "settings",
				leaf(partner, "partner-settings", "Settings", "/settings", "settings"),
				leaf(partner, "partner-profile", "Profile", "/profile", "user"),
			),
		},
	}
}

// NewDefaultRegistry builds the registry from DefaultMenus.
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistry(DefaultMenus())
}

// FallbackMenu is served for panels without a tree. It is never filtered.
func FallbackMenu(basePath string) []models.MenuEntry {
	return []models.MenuEntry{
		{ID: "fallback-dashboard", Label: "Dashboard", Href: basePath + "/dashboard", Icon: "home"},
		{ID: "fallback-settings", Label: "Settings", Href: basePath + "/settings", Icon: "settings"},
		{ID: "fallback-profile", Label: "Profile", Href: basePath + "/profile", Icon: "user"},
	}
}
