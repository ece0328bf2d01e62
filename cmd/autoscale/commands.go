package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cloudpeer/autoscale/pkg/autoscale"
	"github.com/cloudpeer/autoscale/pkg/autoscale/api"
	"github.com/cloudpeer/autoscale/pkg/autoscale/buildinfo"
)

func newClient(ctx context.Context) (*autoscale.Client, error) {
	var opts []autoscale.Option
	if flagRegion != "" {
		opts = append(opts, autoscale.WithRegion(flagRegion))
	}
	if flagEndpoint != "" {
		opts = append(opts, autoscale.WithEndpoint(flagEndpoint))
	}
	return autoscale.New(ctx, opts...)
}

func newGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups [name...]",
		Short: "Describe Auto Scaling groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := client.DescribeAutoScalingGroups(cmd.Context(), &api.DescribeAutoScalingGroupsRequest{
				AutoScalingGroupNames: args,
			})
			if err != nil {
				return err
			}
			w := newTabWriter()
			fmt.Fprintln(w, "NAME\tMIN\tMAX\tDESIRED\tZONES\tINSTANCES")
			for _, g := range resp.AutoScalingGroups {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
					str(g.AutoScalingGroupName),
					num(g.MinSize), num(g.MaxSize), num(g.DesiredCapacity),
					len(g.AvailabilityZones), len(g.Instances))
			}
			return w.Flush()
		},
	}
}

func newLaunchConfigsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launch-configs [name...]",
		Short: "Describe launch configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := client.DescribeLaunchConfigurations(cmd.Context(), &api.DescribeLaunchConfigurationsRequest{
				LaunchConfigurationNames: args,
			})
			if err != nil {
				return err
			}
			w := newTabWriter()
			fmt.Fprintln(w, "NAME\tIMAGE\tTYPE\tCREATED")
			for _, lc := range resp.LaunchConfigurations {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					str(lc.LaunchConfigurationName), str(lc.ImageID),
					str(lc.InstanceType), timestamp(lc.CreatedTime))
			}
			return w.Flush()
		},
	}
}

func newPoliciesCmd() *cobra.Command {
	var group string
	cmd := &cobra.Command{
		Use:   "policies [name...]",
		Short: "Describe scaling policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			req := &api.DescribePoliciesRequest{PolicyNames: args}
			if group != "" {
				req.AutoScalingGroupName = &group
			}
			resp, err := client.DescribePolicies(cmd.Context(), req)
			if err != nil {
				return err
			}
			w := newTabWriter()
			fmt.Fprintln(w, "NAME\tGROUP\tTYPE\tADJUSTMENT\tCOOLDOWN")
			for _, p := range resp.ScalingPolicies {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					str(p.PolicyName), str(p.AutoScalingGroupName),
					str(p.AdjustmentType), num(p.ScalingAdjustment), num(p.Cooldown))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "filter by Auto Scaling group name")
	return cmd
}

func newActivitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activities <group>",
		Short: "Describe scaling activities for a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := client.DescribeScalingActivities(cmd.Context(), &api.DescribeScalingActivitiesRequest{
				AutoScalingGroupName: args[0],
			})
			if err != nil {
				return err
			}
			w := newTabWriter()
			fmt.Fprintln(w, "ID\tSTATUS\tPROGRESS\tSTART\tDESCRIPTION")
			for _, a := range resp.Activities {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					str(a.ActivityID), str(a.StatusCode), num(a.Progress),
					timestamp(a.StartTime), str(a.Description))
			}
			return w.Flush()
		},
	}
	return cmd
}

func newInstancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instances [id...]",
		Short: "Describe Auto Scaling instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := client.DescribeAutoScalingInstances(cmd.Context(), &api.DescribeAutoScalingInstancesRequest{
				InstanceIDs: args,
			})
			if err != nil {
				return err
			}
			w := newTabWriter()
			fmt.Fprintln(w, "ID\tGROUP\tZONE\tSTATE\tHEALTH")
			for _, i := range resp.AutoScalingInstances {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					str(i.InstanceID), str(i.AutoScalingGroupName),
					str(i.AvailabilityZone), str(i.LifecycleState), str(i.HealthStatus))
			}
			return w.Flush()
		},
	}
}

func newSetDesiredCapacityCmd() *cobra.Command {
	var honorCooldown bool
	cmd := &cobra.Command{
		Use:   "set-desired-capacity <group> <capacity>",
		Short: "Set the desired capacity of a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			capacity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parsing capacity: %w", err)
			}
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			req := &api.SetDesiredCapacityRequest{
				AutoScalingGroupName: args[0],
				DesiredCapacity:      capacity,
			}
			if honorCooldown {
				req.HonorCooldown = &honorCooldown
			}
			resp, err := client.SetDesiredCapacity(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("desired capacity set (request %s)\n", resp.RequestID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&honorCooldown, "honor-cooldown", false, "reject the change while the group cooldown is in effect")
	return cmd
}

func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List service regions and endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := newTabWriter()
			fmt.Fprintln(w, "NAME\tENDPOINT")
			for _, region := range autoscale.Regions() {
				fmt.Fprintf(w, "%s\t%s\n", region.Name, region.Endpoint)
			}
			return w.Flush()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := buildinfo.Current()
			fmt.Printf("autoscale %s", info.Version)
			if info.Commit != "" {
				fmt.Printf(" (%s)", info.Commit)
			}
			if info.GoVersion != "" {
				fmt.Printf(" %s", info.GoVersion)
			}
			fmt.Println()
		},
	}
}

func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func str(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func num(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

func timestamp(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}
