// Command carwash is the Wolke Carwash back-office tool: storefront
// catalog, cart and checkout, order and appointment lifecycle, and the
// admin collections, all persisted in a local store file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wolkecarwash/internal/auth"
	"wolkecarwash/internal/cart"
	"wolkecarwash/internal/catalog"
	"wolkecarwash/internal/config"
	"wolkecarwash/internal/customers"
	"wolkecarwash/internal/dashboard"
	"wolkecarwash/internal/inventory"
	"wolkecarwash/internal/lifecycle"
	"wolkecarwash/internal/marketing"
	"wolkecarwash/internal/models"
	"wolkecarwash/internal/simulate"
	"wolkecarwash/internal/staff"
	"wolkecarwash/internal/store"
	"wolkecarwash/internal/weather"
)

var (
	verbose    bool
	configPath string
	dataPath   string

	logger *zap.Logger
)

// app bundles the wired services for one command invocation.
type app struct {
	cfg          config.Config
	local        *store.Local
	catalog      *catalog.Service
	cart         *cart.Cart
	orders       *lifecycle.Orders
	appointments *lifecycle.Appointments
	customers    *customers.Service
	employees    *staff.Employees
	todos        *staff.Todos
	inventory    *inventory.Service
	marketing    *marketing.Service
	locations    *weather.Locations
	guard        *auth.Guard
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dataPath != "" {
		cfg.DataPath = dataPath
	}

	local, err := store.OpenLocal(cfg.DataPath)
	if err != nil {
		return nil, err
	}

	cat := catalog.New(local, logger)
	a := &app{
		cfg:          cfg,
		local:        local,
		catalog:      cat,
		cart:         cart.New(local, logger),
		orders:       lifecycle.NewOrders(local, cat, logger),
		appointments: lifecycle.NewAppointments(local, cat, logger),
		customers:    customers.New(local, logger),
		employees:    staff.NewEmployees(local, logger),
		todos:        staff.NewTodos(local, logger),
		inventory:    inventory.New(local, logger),
		marketing:    marketing.New(local, logger),
		locations:    weather.NewLocations(local, logger),
		guard:        auth.New(cfg.Admin.Username, cfg.Admin.Password, logger),
	}
	return a, nil
}

func (a *app) close() {
	if err := a.local.Close(); err != nil {
		logger.Warn("failed to close store", zap.Error(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "carwash",
	Short: "Wolke Carwash storefront and back office",
	Long: `carwash manages the Wolke Carwash storefront catalog, the shopping
cart, orders and appointments, and the admin collections (customers,
employees, inventory, promotions, todos, weather locations).

All data lives in a local store file; there is no server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// ---- summary ----

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the back-office dashboard figures",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		sum := dashboard.New(a.orders, a.appointments, a.customers, a.inventory, a.marketing).Summary()
		fmt.Printf("Orders:        %d pending, %d confirmed, %d delivered, %d cancelled\n",
			sum.PendingOrders, sum.ConfirmedOrders, sum.DeliveredOrders, sum.CancelledOrders)
		fmt.Printf("Revenue:       %.2f € (delivered)\n", sum.Revenue)
		fmt.Printf("Appointments:  %d pending\n", sum.PendingAppointments)
		fmt.Printf("Customers:     %d\n", sum.Customers)
		fmt.Printf("Low stock:     %d items\n", sum.LowStockItems)
		fmt.Printf("Promotions:    %d active\n", sum.ActivePromotions)
		fmt.Printf("Staffing:      [%s] %s\n", sum.StaffingAdvice.Demand, sum.StaffingAdvice.Text)
		return nil
	},
}

// ---- login ----

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Check admin credentials",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if !a.guard.Login(args[0], args[1]) {
			return fmt.Errorf("access denied")
		}
		fmt.Println("Login OK")
		return nil
	},
}

// ---- catalog ----

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and reset the storefront catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List wash packages and products",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		fmt.Println("Wash packages:")
		for _, pkg := range a.catalog.Packages() {
			fmt.Printf("  %-10s %-10s %6.2f €\n", pkg.ID, pkg.Name, pkg.Price)
		}
		fmt.Println("Products:")
		for _, p := range a.catalog.Products() {
			fmt.Printf("  %-12s %-30s %6.2f €  stock %d\n", p.ID, p.Name, p.Price, p.Stock)
		}
		return nil
	},
}

var catalogResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the catalog to its bundled defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.catalog.Reset(); err != nil {
			return err
		}
		fmt.Println("Catalog reset to defaults")
		return nil
	},
}

// ---- cart ----

var (
	cartQty      int
	cartDate     string
	cartTime     string
	checkoutName string
	checkoutMail string
	checkoutTel  string
	checkoutAddr string
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the shopping cart",
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		p, err := a.catalog.Product(args[0])
		if err != nil {
			return err
		}
		item := models.CartItem{ID: p.ID, Name: p.Name, Price: p.Price, Kind: models.KindProduct}
		if err := a.cart.AddItem(item, cartQty); err != nil {
			return err
		}
		fmt.Printf("Added %dx %s (%d items in cart, %.2f €)\n",
			cartQty, p.Name, a.cart.TotalItems(), a.cart.TotalPrice())
		return nil
	},
}

var cartAddPackageCmd = &cobra.Command{
	Use:   "add-package <package-id>",
	Short: "Add a wash package with an appointment slot to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		pkg, err := a.catalog.Package(args[0])
		if err != nil {
			return err
		}
		item := models.CartItem{
			ID:              pkg.ID,
			Name:            pkg.Name,
			Price:           pkg.Price,
			Kind:            models.KindPackage,
			AppointmentDate: cartDate,
			AppointmentTime: cartTime,
		}
		if err := a.cart.AddItem(item, 1); err != nil {
			return err
		}
		fmt.Printf("Added package %s (%.2f €)\n", pkg.Name, pkg.Price)
		return nil
	},
}

var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the cart lines and totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		items := a.cart.Items()
		if len(items) == 0 {
			fmt.Println("Cart is empty")
			return nil
		}
		for _, it := range items {
			fmt.Printf("  %dx %-30s %8.2f €  (added %s)\n",
				it.Quantity, it.Name, it.Price*float64(it.Quantity),
				time.UnixMilli(it.AddedAt).Format("15:04:05"))
		}
		fmt.Printf("Total: %d items, %.2f €\n", a.cart.TotalItems(), a.cart.TotalPrice())
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()
		if err := a.cart.Clear(); err != nil {
			return err
		}
		fmt.Println("Cart cleared")
		return nil
	},
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Create an order from the cart contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		items := a.cart.Items()
		if len(items) == 0 {
			return fmt.Errorf("cart is empty")
		}
		if checkoutName == "" || checkoutMail == "" {
			return fmt.Errorf("--name and --email are required")
		}

		customer := models.OrderCustomer{
			Name:    checkoutName,
			Email:   checkoutMail,
			Phone:   checkoutTel,
			Address: checkoutAddr,
		}
		id, err := a.orders.Create(items, customer, a.cart.TotalPrice())
		if err != nil {
			return err
		}
		if err := a.cart.Clear(); err != nil {
			return err
		}
		fmt.Printf("Order %s created\n", id)
		return nil
	},
}

// ---- orders ----

var (
	orderStatusFilter string
	statusNote        string
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Inspect and transition orders",
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		orders := a.orders.All()
		if orderStatusFilter != "" {
			orders = a.orders.ByStatus(models.OrderStatus(orderStatusFilter))
		}
		for _, o := range orders {
			fmt.Printf("  %-32s %-10s %8.2f €  %s  %s\n",
				o.ID, o.Status, o.TotalAmount, o.CreatedAt.Format("2006-01-02 15:04"), o.CustomerInfo.Name)
		}
		fmt.Printf("%d orders\n", len(orders))
		return nil
	},
}

var orderStatusCmd = &cobra.Command{
	Use:   "status <order-id> <pending|confirmed|delivered|cancelled>",
	Short: "Move an order to a new status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.orders.UpdateStatus(args[0], models.OrderStatus(args[1]), statusNote); err != nil {
			return err
		}
		fmt.Printf("Order %s -> %s\n", args[0], args[1])
		return nil
	},
}

var orderCancelCmd = &cobra.Command{
	Use:   "cancel <order-id>",
	Short: "Cancel an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.orders.Cancel(args[0], statusNote); err != nil {
			return err
		}
		fmt.Printf("Order %s cancelled\n", args[0])
		return nil
	},
}

// ---- appointments ----

var (
	bookName  string
	bookMail  string
	bookTel   string
	bookCar   string
	bookDate  string
	bookTime  string
	apptsDate string
)

var appointmentCmd = &cobra.Command{
	Use:     "appointment",
	Aliases: []string{"appt"},
	Short:   "Book and manage wash appointments",
}

var appointmentBookCmd = &cobra.Command{
	Use:   "book <package-id>",
	Short: "Book a wash appointment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if bookName == "" || bookDate == "" || bookTime == "" {
			return fmt.Errorf("--name, --date and --time are required")
		}
		form := lifecycle.BookingForm{
			Name:     bookName,
			Email:    bookMail,
			Phone:    bookTel,
			CarModel: bookCar,
			Date:     bookDate,
			Time:     bookTime,
		}
		id, err := a.appointments.Create(form, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Appointment %s booked\n", id)
		return nil
	},
}

var appointmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointments, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		appts := a.appointments.All()
		if apptsDate != "" {
			appts = a.appointments.ByDate(apptsDate)
		}
		for _, appt := range appts {
			fmt.Printf("  %-30s %-10s %s %s  %s (%s)\n",
				appt.ID, appt.Status, appt.AppointmentDate, appt.AppointmentTime,
				appt.CustomerInfo.Name, appt.Package.Name)
		}
		fmt.Printf("%d appointments\n", len(appts))
		return nil
	},
}

var appointmentStatusCmd = &cobra.Command{
	Use:   "status <appointment-id> <pending|confirmed|completed|cancelled>",
	Short: "Move an appointment to a new status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.appointments.UpdateStatus(args[0], models.AppointmentStatus(args[1]), statusNote); err != nil {
			return err
		}
		fmt.Printf("Appointment %s -> %s\n", args[0], args[1])
		return nil
	},
}

// ---- simulate ----

var (
	simWorkers int
	simOrders  int
	simSeed    int64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Generate randomized demo orders and appointments",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		gen := simulate.New(a.catalog, a.orders, a.appointments, logger)
		gen.SetConcurrency(simWorkers)
		gen.SetOrdersPerWorker(simOrders)
		if simSeed != 0 {
			gen.SetSeed(simSeed)
		}

		res := gen.Run()
		fmt.Printf("Orders created:      %d (%d delivered, %d cancelled)\n",
			res.OrdersCreated, res.Delivered, res.Cancelled)
		fmt.Printf("Appointments booked: %d (%d completed)\n",
			res.AppointmentsBooked, res.Completed)
		fmt.Printf("Failures:            %d\n", res.Failures)
		fmt.Printf("Duration:            %v\n", res.Duration)
		return nil
	},
}

// ---- admin collections ----

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Back-office collections",
}

var adminCustomersCmd = &cobra.Command{
	Use:   "customers",
	Short: "List customers with loyalty tiers",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		for _, c := range a.customers.All() {
			fmt.Printf("  %-10s %-20s %-8s %2d visits  %d%% discount\n",
				c.ID, c.Name, c.Loyalty, c.Visits, customers.DiscountFor(c.Loyalty))
		}
		return nil
	},
}

var adminInventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "List supplies, flagging low stock",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		for _, item := range a.inventory.All() {
			flag := " "
			if item.LowStock() {
				flag = "!"
			}
			fmt.Printf("%s %-8s %-25s %4d/%3d %-6s %8.2f €\n",
				flag, item.ID, item.Name, item.CurrentStock, item.MinStock, item.Unit, item.Price)
		}
		return nil
	},
}

var adminPromotionsCmd = &cobra.Command{
	Use:   "promotions",
	Short: "List promotions with derived status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		for _, p := range a.marketing.All() {
			fmt.Printf("  %-10s %-20s %-10s %2d%%  %s – %s  [%s]\n",
				p.ID, p.Name, p.Code, p.Discount, p.StartDate, p.EndDate, p.Status)
		}
		return nil
	},
}

var adminEmployeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "List the staff roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		for _, emp := range a.employees.All() {
			fmt.Printf("  %-8s %-18s %-20s %-12s %s\n",
				emp.ID, emp.Name, emp.Position, emp.Shift, emp.Status)
		}
		return nil
	},
}

var todoText string

var adminTodosCmd = &cobra.Command{
	Use:   "todos",
	Short: "List or add back-office todo notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if todoText != "" {
			if _, err := a.todos.Add(todoText); err != nil {
				return err
			}
		}
		for _, todo := range a.todos.Filtered(staff.FilterAll) {
			mark := " "
			if todo.Completed {
				mark = "x"
			}
			fmt.Printf("  [%s] %-10s %s\n", mark, todo.ID, todo.Text)
		}
		return nil
	},
}

var adminWeatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Show locations and the staffing advice",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		for _, loc := range a.locations.All() {
			active := " "
			if loc.IsActive {
				active = "*"
			}
			fmt.Printf("%s %-8s %-12s %8.4f, %8.4f\n", active, loc.ID, loc.Name, loc.Lat, loc.Lon)
		}
		today, tomorrow := weather.DemoForecast()
		advice := weather.AdviceFor(today, tomorrow)
		fmt.Printf("\n[%s] %s\n", advice.Demand, advice.Text)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "override the store file location")

	cartAddCmd.Flags().IntVar(&cartQty, "qty", 1, "quantity to add")
	cartAddPackageCmd.Flags().StringVar(&cartDate, "date", "", "appointment date (YYYY-MM-DD)")
	cartAddPackageCmd.Flags().StringVar(&cartTime, "time", "", "appointment time (HH:MM)")
	cartCmd.AddCommand(cartAddCmd, cartAddPackageCmd, cartListCmd, cartClearCmd)

	checkoutCmd.Flags().StringVar(&checkoutName, "name", "", "customer name")
	checkoutCmd.Flags().StringVar(&checkoutMail, "email", "", "customer email")
	checkoutCmd.Flags().StringVar(&checkoutTel, "phone", "", "customer phone")
	checkoutCmd.Flags().StringVar(&checkoutAddr, "address", "", "delivery address")

	orderListCmd.Flags().StringVar(&orderStatusFilter, "status", "", "filter by status")
	orderStatusCmd.Flags().StringVar(&statusNote, "note", "", "history note")
	orderCancelCmd.Flags().StringVar(&statusNote, "note", "", "history note")
	orderCmd.AddCommand(orderListCmd, orderStatusCmd, orderCancelCmd)

	appointmentBookCmd.Flags().StringVar(&bookName, "name", "", "customer name")
	appointmentBookCmd.Flags().StringVar(&bookMail, "email", "", "customer email")
	appointmentBookCmd.Flags().StringVar(&bookTel, "phone", "", "customer phone")
	appointmentBookCmd.Flags().StringVar(&bookCar, "car", "", "car model")
	appointmentBookCmd.Flags().StringVar(&bookDate, "date", "", "appointment date (YYYY-MM-DD)")
	appointmentBookCmd.Flags().StringVar(&bookTime, "time", "", "appointment time (HH:MM)")
	appointmentListCmd.Flags().StringVar(&apptsDate, "date", "", "filter by date (YYYY-MM-DD)")
	appointmentStatusCmd.Flags().StringVar(&statusNote, "note", "", "history note")
	appointmentCmd.AddCommand(appointmentBookCmd, appointmentListCmd, appointmentStatusCmd)

	catalogCmd.AddCommand(catalogListCmd, catalogResetCmd)

	simulateCmd.Flags().IntVar(&simWorkers, "workers", 4, "concurrent simulated customers")
	simulateCmd.Flags().IntVar(&simOrders, "orders", 5, "orders per worker")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "random seed (0 picks one)")

	adminTodosCmd.Flags().StringVar(&todoText, "add", "", "add a note before listing")
	adminCmd.AddCommand(adminCustomersCmd, adminInventoryCmd, adminPromotionsCmd,
		adminEmployeesCmd, adminTodosCmd, adminWeatherCmd)

	rootCmd.AddCommand(summaryCmd, loginCmd, catalogCmd, cartCmd, checkoutCmd,
		orderCmd, appointmentCmd, adminCmd, simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
